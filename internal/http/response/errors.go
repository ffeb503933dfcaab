package response

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
)

type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RespondError maps err onto its status. Only 500s expose the underlying
// error text.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil {
		ae = apierr.Internal("Internal server error", nil)
	}
	body := ErrorBody{Message: ae.Message}
	if body.Message == "" {
		body.Message = ae.Error()
	}
	if ae.Status >= 500 && ae.Err != nil {
		body.Error = ae.Err.Error()
	}
	_ = c.Error(ae)
	c.AbortWithStatusJSON(ae.Status, body)
}
