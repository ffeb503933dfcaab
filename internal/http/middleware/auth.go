package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/authz"
	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

const MsgNoToken = "No token provided, authorization denied"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), authService: authService}
}

// RequireAuth resolves the bearer token into request data on the context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.RespondError(c, apierr.Auth(MsgNoToken))
			return
		}
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), token)
		if err != nil {
			response.RespondError(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Require gates the route on the caller's role holding p. Must run after RequireAuth.
func (am *AuthMiddleware) Require(p authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if err := authz.Authorize(rd, p); err != nil {
			am.log.Debug("permission denied", "permission", string(p), "role", roleOf(rd))
			response.RespondError(c, err)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func roleOf(rd *ctxutil.RequestData) string {
	if rd == nil {
		return ""
	}
	return rd.Role
}
