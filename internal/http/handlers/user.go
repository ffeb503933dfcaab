package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Users retrieved successfully", gin.H{
		"count": len(users),
		"users": users,
	})
}

// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "id", services.MsgUserNotFound)
	if !ok {
		return
	}
	var req services.UserUpdate
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "User updated successfully", gin.H{"user": u})
}
