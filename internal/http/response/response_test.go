package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
)

func run(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
	}
	return rec, body
}

func TestRespondOK(t *testing.T) {
	rec, body := run(t, func(c *gin.Context) {
		RespondOK(c, "Courses fetched", gin.H{"courses": []int{1, 2}, "count": 2})
	})
	if rec.Code != http.StatusOK || body["message"] != "Courses fetched" || body["count"].(float64) != 2 {
		t.Fatalf("unexpected response: %d %v", rec.Code, body)
	}
}

func TestRespondErrorMapsStatus(t *testing.T) {
	rec, body := run(t, func(c *gin.Context) { RespondError(c, apierr.NotFound("Course not found")) })
	if rec.Code != http.StatusNotFound || body["message"] != "Course not found" {
		t.Fatalf("unexpected response: %d %v", rec.Code, body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("4xx must not expose error detail: %v", body)
	}
}

func TestRespondErrorUnknownIsInternal(t *testing.T) {
	rec, body := run(t, func(c *gin.Context) { RespondError(c, errors.New("connection refused")) })
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "Internal server error" || body["error"] != "connection refused" {
		t.Fatalf("unexpected body: %v", body)
	}
}
