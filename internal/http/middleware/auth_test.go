package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/neurobridge-lms/internal/authz"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/services"
)

// stubAuth maps fixed token strings to roles.
type stubAuth struct {
	roles map[string]string
}

func (s stubAuth) Register(context.Context, services.RegisterInput) (*services.AuthResult, error) {
	return nil, nil
}
func (s stubAuth) Login(context.Context, string, string) (*services.AuthResult, error) {
	return nil, nil
}
func (s stubAuth) Verify(context.Context, string) (*services.Claims, error) { return nil, nil }
func (s stubAuth) Logout(context.Context) error                             { return nil }
func (s stubAuth) Me(context.Context) (*types.PublicUser, error)            { return nil, nil }
func (s stubAuth) TokenTTL() time.Duration                                  { return time.Hour }

func (s stubAuth) SetContextFromToken(ctx context.Context, token string) (context.Context, error) {
	if token == "expired" {
		return nil, apierr.Auth(services.MsgTokenExpired)
	}
	role, ok := s.roles[token]
	if !ok {
		return nil, apierr.Auth(services.MsgInvalidToken)
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: uuid.New(), Role: role}), nil
}

func newAuthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(logger.NewNop(), stubAuth{roles: map[string]string{
		"learner": user.RoleLearner,
		"trainer": user.RoleTrainer,
		"admin":   user.RoleAdmin,
	}})
	r := gin.New()
	r.Use(am.RequireAuth())
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.POST("/courses", am.Require(authz.CourseCreate), ok)
	r.DELETE("/courses", am.Require(authz.CourseDelete), ok)
	r.POST("/organizations", am.Require(authz.OrganizationCreate), ok)
	r.GET("/courses", ok)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()
	r := newAuthEngine()

	cases := []struct {
		name   string
		method string
		path   string
		header string
		status int
		msg    string
	}{
		{"missing header", http.MethodGet, "/courses", "", http.StatusUnauthorized, MsgNoToken},
		{"not bearer", http.MethodGet, "/courses", "Basic abc", http.StatusUnauthorized, MsgNoToken},
		{"expired", http.MethodGet, "/courses", "Bearer expired", http.StatusUnauthorized, services.MsgTokenExpired},
		{"unknown token", http.MethodGet, "/courses", "Bearer nope", http.StatusUnauthorized, services.MsgInvalidToken},
		{"any role reads", http.MethodGet, "/courses", "Bearer learner", http.StatusNoContent, ""},
		{"learner creates course", http.MethodPost, "/courses", "Bearer learner", http.StatusForbidden, authz.MsgForbidden},
		{"trainer creates course", http.MethodPost, "/courses", "bearer trainer", http.StatusNoContent, ""},
		{"trainer deletes course", http.MethodDelete, "/courses", "Bearer trainer", http.StatusForbidden, authz.MsgForbidden},
		{"admin deletes course", http.MethodDelete, "/courses", "Bearer admin", http.StatusNoContent, ""},
		{"trainer creates organization", http.MethodPost, "/organizations", "Bearer trainer", http.StatusForbidden, authz.MsgAdminOnly},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status: got=%d want=%d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.msg == "" {
				return
			}
			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Message != tc.msg {
				t.Fatalf("message: got=%q want=%q", body.Message, tc.msg)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":               "",
		"Bearer":         "",
		"Bearer ":        "",
		"Bearer abc":     "abc",
		"BEARER  abc ":   "abc",
		"Token abcdefgh": "",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q)=%q want %q", in, got, want)
		}
	}
}
