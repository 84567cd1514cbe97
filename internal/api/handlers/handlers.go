// Package handlers provides HTTP request handlers for the curio API server.
//
// Handlers never touch the record store directly: every operation is submitted
// to the coalescing scheduler and the handler waits on the returned future.
// Identical concurrent requests therefore share one execution, and the handler
// just translates the shared outcome into an HTTP response.
package handlers

import (
	"errors"
	"net/http"

	"github.com/curio-dev/curio/internal/catalog"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/gin-gonic/gin"
)

// Submitter is the narrow view of the scheduler that handlers need. Defined
// here rather than importing the api package's wiring so handlers stay
// independently testable against a bare scheduler.
type Submitter interface {
	Submit(op queue.Op, payload any) (*queue.Future, error) // Enqueue an operation for the next batch
	Stats() queue.Stats                                     // Scheduler introspection
}

// submitAndWait submits an operation and blocks until its batch resolves it
// or the request context ends. The boolean is false when a response has
// already been written.
func submitAndWait(c *gin.Context, sub Submitter, op queue.Op, payload any) (any, bool) {
	future, err := sub.Submit(op, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to queue operation",
			"details": err.Error(),
		})
		return nil, false
	}

	value, err := future.Wait(c.Request.Context())
	if err != nil {
		writeOperationError(c, err)
		return nil, false
	}
	return value, true
}

// writeOperationError maps the executor's error taxonomy onto HTTP status
// codes. Context errors mean the client went away or the server timed the
// request out while the batch was still pending.
func writeOperationError(c *gin.Context, err error) {
	var (
		validationErr *catalog.ValidationError
		notFoundErr   *catalog.NotFoundError
		conflictErr   *catalog.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "missing_ids": notFoundErr.IDs})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "id": conflictErr.ID})
	case errors.Is(err, c.Request.Context().Err()):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request cancelled before batch completed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
