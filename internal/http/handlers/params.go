package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
)

const MsgInvalidBody = "Invalid request body"

// bindJSON decodes the body into dst, answering 400 itself on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, apierr.Validation(MsgInvalidBody))
		return false
	}
	return true
}

// pathID parses a uuid path parameter. A malformed id cannot name a stored
// row, so it answers with the same 404 an unknown id would.
func pathID(c *gin.Context, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		response.RespondError(c, apierr.NotFound(notFound))
		return uuid.Nil, false
	}
	return id, true
}
