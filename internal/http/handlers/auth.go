package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/http/response"
	"github.com/yungbote/neurobridge-lms/internal/observability"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	metrics     *observability.Metrics
}

func NewAuthHandler(authService services.AuthService, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: metrics}
}

// POST /api/auth/register
func (ah *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := ah.authService.Register(c.Request.Context(), req)
	ah.metrics.IncAuthEvent("register", outcome(err))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "User registered successfully", gin.H{
		"token": res.Token,
		"user":  res.User,
	})
}

// POST /api/auth/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	res, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	ah.metrics.IncAuthEvent("login", outcome(err))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Login successful", gin.H{
		"token":     res.Token,
		"user":      res.User,
		"expiresIn": int(ah.authService.TokenTTL().Seconds()),
	})
}

// GET /api/auth/me
func (ah *AuthHandler) Me(c *gin.Context) {
	u, err := ah.authService.Me(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "User retrieved successfully", gin.H{"user": u})
}

// POST /api/auth/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	err := ah.authService.Logout(c.Request.Context())
	ah.metrics.IncAuthEvent("logout", outcome(err))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Logged out successfully", nil)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apierr.StatusOf(err) >= 500:
		return "error"
	default:
		return "rejected"
	}
}
