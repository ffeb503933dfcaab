package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/observability"
)

type HealthHandler struct {
	db      *gorm.DB
	metrics *observability.Metrics
}

func NewHealthHandler(db *gorm.DB, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{db: db, metrics: metrics}
}

// HealthCheck answers "ok" while the database answers a trivial query.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
			c.String(http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	c.String(http.StatusOK, "ok")
}

// Metrics serves the Prometheus text exposition.
func (h *HealthHandler) Metrics(c *gin.Context) {
	h.metrics.WriteHTTP(c.Writer, c.Request)
}
