package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/service"
	"github.com/noah-isme/edutrack-api/pkg/jobs"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type queueStats interface {
	Stats() jobs.Stats
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	planner queueStats
	started time.Time
}

// NewMetricsHandler constructs a metrics handler. planner may be nil when
// suggestion jobs run without a queue.
func NewMetricsHandler(metrics *service.MetricsService, planner queueStats) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, planner: planner, started: time.Now()}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Snapshot godoc
// @Summary Aggregated request, cache, store and planner counters
// @Tags Metrics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /metrics/snapshot [get]
func (h *MetricsHandler) Snapshot(c *gin.Context) {
	snapshot := h.metrics.Snapshot()
	if h.planner != nil {
		stats := h.planner.Stats()
		snapshot.PlannerQueue = &dto.QueueSnapshot{
			Pending:   stats.Pending,
			Processed: stats.Processed,
			Retried:   stats.Retried,
			Dropped:   stats.Dropped,
		}
	}
	response.JSON(c, http.StatusOK, snapshot, nil)
}

// Health reports liveness and process uptime.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}
