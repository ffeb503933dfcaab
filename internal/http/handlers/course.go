package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type CourseHandler struct {
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// GET /api/courses?status=&category=&difficulty=&search=
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses(c.Request.Context(), services.CourseFilter{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Courses retrieved successfully", gin.H{
		"count":   len(courses),
		"courses": courses,
	})
}

// POST /api/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req services.CreateCourseInput
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.courseService.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "Course created successfully", gin.H{"course": course})
}

// GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id", services.MsgCourseNotFound)
	if !ok {
		return
	}
	detail, err := h.courseService.GetCourseDetail(c.Request.Context(), courseID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Course retrieved successfully", gin.H{
		"course":  detail.Course,
		"modules": detail.Modules,
	})
}

// PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id", services.MsgCourseNotFound)
	if !ok {
		return
	}
	var req services.CourseUpdate
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.courseService.UpdateCourse(c.Request.Context(), courseID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Course updated successfully", gin.H{"course": course})
}

// PATCH /api/courses/:id/publish
func (h *CourseHandler) SetCourseStatus(c *gin.Context) {
	courseID, ok := pathID(c, "id", services.MsgCourseNotFound)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.courseService.SetCourseStatus(c.Request.Context(), courseID, req.Status)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Course "+strings.ToLower(course.Status)+" successfully", gin.H{"course": course})
}

// DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id", services.MsgCourseNotFound)
	if !ok {
		return
	}
	if err := h.courseService.DeleteCourse(c.Request.Context(), courseID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Course deleted successfully", nil)
}
