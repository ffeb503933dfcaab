package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondOK writes {"message": msg, ...fields}. List payloads carry a count.
func RespondOK(c *gin.Context, msg string, fields gin.H) {
	respond(c, http.StatusOK, msg, fields)
}

func RespondCreated(c *gin.Context, msg string, fields gin.H) {
	respond(c, http.StatusCreated, msg, fields)
}

func respond(c *gin.Context, status int, msg string, fields gin.H) {
	body := gin.H{"message": msg}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}
