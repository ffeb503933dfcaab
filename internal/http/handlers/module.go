package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type ModuleHandler struct {
	moduleService services.ModuleService
}

func NewModuleHandler(moduleService services.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// POST /api/courses/:id/modules
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	courseID, ok := pathID(c, "id", services.MsgCourseNotFound)
	if !ok {
		return
	}
	var req services.CreateModuleInput
	if !bindJSON(c, &req) {
		return
	}
	module, err := h.moduleService.CreateModule(c.Request.Context(), courseID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "Module created successfully", gin.H{"module": module})
}

// GET /api/courses/modules/:id
func (h *ModuleHandler) GetModule(c *gin.Context) {
	moduleID, ok := pathID(c, "id", services.MsgModuleNotFound)
	if !ok {
		return
	}
	module, err := h.moduleService.GetModule(c.Request.Context(), moduleID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Module retrieved successfully", gin.H{"module": module})
}

// PUT /api/courses/modules/:id
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	moduleID, ok := pathID(c, "id", services.MsgModuleNotFound)
	if !ok {
		return
	}
	var req services.ModuleUpdate
	if !bindJSON(c, &req) {
		return
	}
	module, err := h.moduleService.UpdateModule(c.Request.Context(), moduleID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Module updated successfully", gin.H{"module": module})
}

// DELETE /api/courses/modules/:id
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	moduleID, ok := pathID(c, "id", services.MsgModuleNotFound)
	if !ok {
		return
	}
	if err := h.moduleService.DeleteModule(c.Request.Context(), moduleID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Module deleted successfully", nil)
}
