package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type LessonHandler struct {
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// POST /api/courses/modules/:id/lessons
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	moduleID, ok := pathID(c, "id", services.MsgModuleNotFound)
	if !ok {
		return
	}
	var req services.CreateLessonInput
	if !bindJSON(c, &req) {
		return
	}
	lesson, err := h.lessonService.CreateLesson(c.Request.Context(), moduleID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "Lesson created successfully", gin.H{"lesson": lesson})
}

// GET /api/courses/lessons/:id
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lessonID, ok := pathID(c, "id", services.MsgLessonNotFound)
	if !ok {
		return
	}
	lesson, err := h.lessonService.GetLesson(c.Request.Context(), lessonID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Lesson retrieved successfully", gin.H{"lesson": lesson})
}

// PUT /api/courses/lessons/:id
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	lessonID, ok := pathID(c, "id", services.MsgLessonNotFound)
	if !ok {
		return
	}
	var req services.LessonUpdate
	if !bindJSON(c, &req) {
		return
	}
	lesson, err := h.lessonService.UpdateLesson(c.Request.Context(), lessonID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Lesson updated successfully", gin.H{"lesson": lesson})
}

// DELETE /api/courses/lessons/:id
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	lessonID, ok := pathID(c, "id", services.MsgLessonNotFound)
	if !ok {
		return
	}
	if err := h.lessonService.DeleteLesson(c.Request.Context(), lessonID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Lesson deleted successfully", nil)
}
