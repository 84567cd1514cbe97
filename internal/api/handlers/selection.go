// Package handlers provides HTTP request handlers for the curio API server.
//
// This file implements the selection endpoints:
//
//   - GET    /api/v1/selection: Fetch the selection, paginated
//   - POST   /api/v1/selection: Add record IDs to the selection
//   - PUT    /api/v1/selection/order: Replace the selection order
//   - DELETE /api/v1/selection: Remove record IDs from the selection
//
// Mutations travel on the write batch: identical concurrent mutations are
// suppressed down to one execution, and a mutation that names a missing
// record rejects without partially applying.
package handlers

import (
	"net/http"

	"github.com/curio-dev/curio/internal/catalog"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/gin-gonic/gin"
)

// SelectionIDsRequest represents the HTTP request payload for selection
// mutations: a non-empty list of record IDs.
type SelectionIDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// GetSelection handles paginated selection fetches. The response always
// carries the full unpaginated selection ID list alongside the resolved page.
//
// GET /api/v1/selection?offset=0&limit=20
func GetSelection(sub Submitter, maxPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePage(c, maxPageSize)
		if !ok {
			return
		}

		payload := queue.PagePayload{Offset: offset, Limit: limit}
		value, ok := submitAndWait(c, sub, queue.OpGetSelection, payload)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, value.(catalog.SelectionResult))
	}
}

// SelectRecords handles adding records to the selection.
//
// POST /api/v1/selection
func SelectRecords(sub Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindIDs(c)
		if !ok {
			return
		}

		value, ok := submitAndWait(c, sub, queue.OpSelectRecords, queue.IDSetPayload{IDs: req.IDs})
		if !ok {
			return
		}

		if _, isDup := value.(queue.SuppressedResult); isDup {
			writeSuppressed(c)
			return
		}

		result := value.(catalog.SelectResult)
		logging.Debug("Selection: added %d, already selected %d", len(result.Added), len(result.AlreadySelected))
		c.JSON(http.StatusOK, result)
	}
}

// ReorderSelection handles replacing the selection order. The new order must
// be an exact permutation of the current selection.
//
// PUT /api/v1/selection/order
func ReorderSelection(sub Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindIDs(c)
		if !ok {
			return
		}

		value, ok := submitAndWait(c, sub, queue.OpReorderSelection, queue.IDSetPayload{IDs: req.IDs})
		if !ok {
			return
		}

		if _, isDup := value.(queue.SuppressedResult); isDup {
			writeSuppressed(c)
			return
		}

		c.JSON(http.StatusOK, value.(catalog.ReorderResult))
	}
}

// UnselectRecords handles removing records from the selection. Partial
// removal is a success: the response reports removed and not-found counts.
//
// DELETE /api/v1/selection
func UnselectRecords(sub Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindIDs(c)
		if !ok {
			return
		}

		value, ok := submitAndWait(c, sub, queue.OpUnselectRecords, queue.IDSetPayload{IDs: req.IDs})
		if !ok {
			return
		}

		if _, isDup := value.(queue.SuppressedResult); isDup {
			writeSuppressed(c)
			return
		}

		c.JSON(http.StatusOK, value.(catalog.UnselectResult))
	}
}

// bindIDs parses the shared ID-list request body. Returns false after writing
// a 400 response on malformed input.
func bindIDs(c *gin.Context) (SelectionIDsRequest, bool) {
	var req SelectionIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Warn("Selection: Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return SelectionIDsRequest{}, false
	}
	return req, true
}

// writeSuppressed reports that an identical mutation is already pending.
func writeSuppressed(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{
		"status": "duplicate_suppressed",
		"detail": "an identical mutation is already pending; its outcome applies",
	})
}
