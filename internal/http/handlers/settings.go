package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

// SettingsHandler serves an organization's learning policy.
type SettingsHandler struct {
	policyService services.LearningPolicyService
}

func NewSettingsHandler(policyService services.LearningPolicyService) *SettingsHandler {
	return &SettingsHandler{policyService: policyService}
}

// POST /api/settings
func (h *SettingsHandler) CreatePolicy(c *gin.Context) {
	var req services.LearningPolicyInput
	if !bindJSON(c, &req) {
		return
	}
	policy, err := h.policyService.CreatePolicy(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "Learning policy created successfully", gin.H{"policy": policy})
}

// GET /api/settings/:orgId
func (h *SettingsHandler) GetPolicy(c *gin.Context) {
	orgID, ok := pathID(c, "orgId", services.MsgPolicyNotFound)
	if !ok {
		return
	}
	policy, err := h.policyService.GetPolicy(c.Request.Context(), orgID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Learning policy retrieved successfully", gin.H{"policy": policy})
}

// PUT /api/settings/:orgId
func (h *SettingsHandler) UpdatePolicy(c *gin.Context) {
	orgID, ok := pathID(c, "orgId", services.MsgOrganizationNotFound)
	if !ok {
		return
	}
	var req services.LearningPolicyUpdate
	if !bindJSON(c, &req) {
		return
	}
	policy, err := h.policyService.UpdatePolicy(c.Request.Context(), orgID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Learning policy updated successfully", gin.H{"policy": policy})
}
