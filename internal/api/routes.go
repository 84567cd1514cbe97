package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// API version prefix
	v1 := router.Group("/api/v1")

	// Health check endpoint
	v1.GET("/health", s.handleHealth)

	// Record catalog endpoints
	records := v1.Group("/records")
	{
		records.GET("", s.handleListRecords)
		records.POST("", s.handleCreateRecord)
	}

	// Selection endpoints
	selection := v1.Group("/selection")
	{
		selection.GET("", s.handleGetSelection)
		selection.POST("", s.handleSelectRecords)
		selection.PUT("/order", s.handleReorderSelection)
		selection.DELETE("", s.handleUnselectRecords)
	}

	// Scheduler introspection
	v1.GET("/queue/stats", s.handleQueueStats)
}
