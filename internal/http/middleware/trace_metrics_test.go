package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/yungbote/neurobridge-lms/internal/observability"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
)

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(headerRequestID); got != "req-1" {
		t.Fatalf("request id: got=%q", got)
	}
	if rec.Header().Get(headerTraceID) == "" {
		t.Fatalf("expected a generated trace id")
	}
	if seen == nil || seen.RequestID != "req-1" {
		t.Fatalf("trace data not on context: %+v", seen)
	}
}

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	m := observability.NewMetrics()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/courses/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/abc", nil))

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `route="/api/courses/:id"`) {
		t.Fatalf("expected route template in output:\n%s", out)
	}
	if strings.Contains(out, "/api/courses/abc") {
		t.Fatalf("raw path leaked into labels:\n%s", out)
	}
}

func TestMetricsNilIsPassthrough(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status: got=%d", rec.Code)
	}
}

func TestAttachTraceContextPrefersSpan(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx, span := tp.Tracer("test").Start(c.Request.Context(), "request")
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-2")
	req.Header.Set(headerTraceID, "client-trace")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	if got := w.Header().Get(headerTraceID); got != spans[0].SpanContext().TraceID().String() {
		t.Fatalf("trace id: got=%q want span trace id", got)
	}
	var tagged bool
	for _, kv := range spans[0].Attributes() {
		if string(kv.Key) == attrRequestID && kv.Value.AsString() == "req-2" {
			tagged = true
		}
	}
	if !tagged {
		t.Fatalf("request id not tagged on span: %v", spans[0].Attributes())
	}
}

func TestMetricsUnmatchedAndSkipped(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	m := observability.NewMetrics()
	r := gin.New()
	r.Use(Metrics(m, "/metrics"))
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/metrics", "/wp-admin/setup.php"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, `route="/metrics"`) {
		t.Fatalf("skipped route was observed:\n%s", out)
	}
	if !strings.Contains(out, `route="unmatched"`) || strings.Contains(out, "wp-admin") {
		t.Fatalf("unmatched path not collapsed:\n%s", out)
	}
}
