package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports process liveness together with a snapshot of
// scheduler load, so an operator can see whether batches are draining or
// piling up without a second request to the stats endpoint.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	Uptime        string    `json:"uptime"`
	PendingOps    int       `json:"pending_ops"`
	RunningReads  int       `json:"running_reads"`
	RunningWrites int       `json:"running_writes"`
}

// HandleHealth reports liveness plus current queue pressure.
//
// GET /api/v1/health
func HandleHealth(version string, startTime time.Time, sub Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := sub.Stats()

		c.JSON(http.StatusOK, HealthResponse{
			Status:        "healthy",
			Timestamp:     time.Now(),
			Version:       version,
			Uptime:        time.Since(startTime).String(),
			PendingOps:    stats.PendingCount,
			RunningReads:  stats.RunningReadBatchSize,
			RunningWrites: stats.RunningWriteBatchSize,
		})
	}
}
