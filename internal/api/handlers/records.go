// Package handlers provides HTTP request handlers for the curio API server.
//
// This file implements the record catalog endpoints:
//
//   - GET  /api/v1/records: List records with filtering and pagination
//   - POST /api/v1/records: Create a new record
//
// Both endpoints flow through the scheduler: a burst of identical list
// requests executes the filter once, and duplicate concurrent creates are
// suppressed down to a single store append.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/curio-dev/curio/internal/catalog"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/curio-dev/curio/internal/store"
	"github.com/curio-dev/curio/internal/validate"
	"github.com/gin-gonic/gin"
)

// RecordCreateRequest represents the HTTP request payload for creating a
// record. ID is optional: zero lets the store allocate the next unused ID.
type RecordCreateRequest struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// RecordListResponse represents the HTTP response for record listing.
type RecordListResponse struct {
	Records []store.Record `json:"records"`
	Count   int            `json:"count"`
	Total   int            `json:"total"`
	HasMore bool           `json:"has_more"`
}

// parsePage extracts and clamps offset/limit query parameters. Returns false
// after writing a 400 response when a parameter is malformed.
func parsePage(c *gin.Context, maxPageSize int) (offset, limit int, ok bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid offset: must be a non-negative integer",
		})
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(maxPageSize)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid limit: must be a positive integer",
		})
		return 0, 0, false
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit, true
}

// ListRecords handles record listing with substring filtering and pagination.
//
// GET /api/v1/records?offset=0&limit=20&q=jazz
func ListRecords(sub Submitter, maxPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePage(c, maxPageSize)
		if !ok {
			return
		}

		payload := queue.PagePayload{
			Offset: offset,
			Limit:  limit,
			Filter: c.Query("q"),
		}

		value, ok := submitAndWait(c, sub, queue.OpListRecords, payload)
		if !ok {
			return
		}

		result := value.(catalog.ListResult)
		c.JSON(http.StatusOK, RecordListResponse{
			Records: result.Records,
			Count:   len(result.Records),
			Total:   result.Total,
			HasMore: result.HasMore,
		})
	}
}

// CreateRecord handles record creation.
//
// POST /api/v1/records
//
// A duplicate of an already-pending identical create resolves with HTTP 202
// and a suppressed marker instead of creating a second record.
func CreateRecord(sub Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logging.Warn("Record creation: Invalid request body: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request body",
				"details": err.Error(),
			})
			return
		}

		if req.Category != "" {
			if err := validate.CategoryFormat(req.Category); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Invalid category",
					"details": err.Error(),
				})
				return
			}
		}

		payload := queue.CreatePayload{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
		}

		value, ok := submitAndWait(c, sub, queue.OpCreateRecord, payload)
		if !ok {
			return
		}

		if suppressed, isDup := value.(queue.SuppressedResult); isDup {
			logging.Debug("Record creation: duplicate suppressed (key %s)", suppressed.Key)
			c.JSON(http.StatusAccepted, gin.H{
				"status": "duplicate_suppressed",
				"detail": "an identical create is already pending; its outcome applies",
			})
			return
		}

		rec := value.(store.Record)
		logging.Success("Record created: id=%d name=%s", rec.ID, rec.Name)
		c.JSON(http.StatusCreated, rec)
	}
}
