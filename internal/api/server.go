// Package api provides the HTTP API server for the curio service. The server
// exposes the record catalog and selection via REST endpoints; every operation
// is submitted to the coalescing scheduler rather than hitting the store
// directly, so concurrent identical requests share one execution.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/curio-dev/curio/internal/api/handlers"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/netutil"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/curio-dev/curio/internal/version"
	"github.com/gin-gonic/gin"
)

// Server is the curio API server.
type Server struct {
	scheduler   *queue.Scheduler
	httpServer  *http.Server
	bindAddr    string
	bindPort    int
	maxPageSize int
	rateLimit   float64
	rateBurst   int
}

// NewServer creates a new API server instance from a validated config.
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		scheduler:   config.Scheduler,
		bindAddr:    config.BindAddr,
		bindPort:    config.BindPort,
		maxPageSize: config.MaxPageSize,
		rateLimit:   config.RateLimit,
		rateBurst:   config.RateBurst,
	}
}

// Start starts the API server.
func (s *Server) Start() error {
	logging.Info("Starting HTTP API server on %s:%d", s.bindAddr, s.bindPort)

	// Create Gin router
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Add middleware
	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	if s.rateLimit > 0 {
		router.Use(s.rateLimitMiddleware())
	}
	router.Use(gin.Recovery())

	// Setup routes
	s.setupRoutes(router)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.bindAddr, s.bindPort),
		Handler: router,
		// Timeouts for production
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Pre-bind the listener so the port stays reserved from here on
	listener, err := netutil.NewPortBinder().BindTCP(s.bindAddr, s.bindPort)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}

	// Start server in goroutine on the already-bound listener
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server started successfully")
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

var startTime = time.Now() // Track server start time for uptime calculation

// handleHealth delegates to handlers.HandleHealth
func (s *Server) handleHealth(c *gin.Context) {
	handlers.HandleHealth(version.CuriodVersion, startTime, s.scheduler)(c)
}

// handleListRecords delegates to handlers.ListRecords
func (s *Server) handleListRecords(c *gin.Context) {
	handlers.ListRecords(s.scheduler, s.maxPageSize)(c)
}

// handleCreateRecord delegates to handlers.CreateRecord
func (s *Server) handleCreateRecord(c *gin.Context) {
	handlers.CreateRecord(s.scheduler)(c)
}

// handleGetSelection delegates to handlers.GetSelection
func (s *Server) handleGetSelection(c *gin.Context) {
	handlers.GetSelection(s.scheduler, s.maxPageSize)(c)
}

// handleSelectRecords delegates to handlers.SelectRecords
func (s *Server) handleSelectRecords(c *gin.Context) {
	handlers.SelectRecords(s.scheduler)(c)
}

// handleReorderSelection delegates to handlers.ReorderSelection
func (s *Server) handleReorderSelection(c *gin.Context) {
	handlers.ReorderSelection(s.scheduler)(c)
}

// handleUnselectRecords delegates to handlers.UnselectRecords
func (s *Server) handleUnselectRecords(c *gin.Context) {
	handlers.UnselectRecords(s.scheduler)(c)
}

// handleQueueStats delegates to handlers.HandleQueueStats
func (s *Server) handleQueueStats(c *gin.Context) {
	handlers.HandleQueueStats(s.scheduler)(c)
}
