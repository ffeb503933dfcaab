package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-lms/internal/observability"
)

// routeUnmatched labels requests no route claimed, so scanners hitting
// random paths share one series.
const routeUnmatched = "unmatched"

// Metrics records count and latency per route template. Paths listed in skip
// (the scrape endpoint) are served but not observed.
func Metrics(m *observability.Metrics, skip ...string) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if _, ok := skipped[route]; ok && route != "" {
			c.Next()
			return
		}
		if route == "" {
			route = routeUnmatched
		}

		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
