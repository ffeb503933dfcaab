package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type OrganizationHandler struct {
	orgService services.OrganizationService
}

func NewOrganizationHandler(orgService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// POST /api/organizations
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req services.CreateOrganizationInput
	if !bindJSON(c, &req) {
		return
	}
	org, err := h.orgService.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "Organization created successfully", gin.H{"organization": org})
}

// GET /api/organizations/:id
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, ok := pathID(c, "id", services.MsgOrganizationNotFound)
	if !ok {
		return
	}
	org, err := h.orgService.GetOrganization(c.Request.Context(), orgID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Organization retrieved successfully", gin.H{"organization": org})
}

// PUT /api/organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, ok := pathID(c, "id", services.MsgOrganizationNotFound)
	if !ok {
		return
	}
	var req services.OrganizationUpdate
	if !bindJSON(c, &req) {
		return
	}
	org, err := h.orgService.UpdateOrganization(c.Request.Context(), orgID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Organization updated successfully", gin.H{"organization": org})
}
