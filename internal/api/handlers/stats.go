package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleQueueStats exposes the scheduler's pending and running batch counts.
// Introspection only: reading stats never perturbs scheduling.
//
// GET /api/v1/queue/stats
func HandleQueueStats(sub Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sub.Stats())
	}
}
