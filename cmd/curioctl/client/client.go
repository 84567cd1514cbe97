// Package client provides the HTTP API client for the curioctl CLI.
//
// Implements the client layer for communicating with the curiod REST API:
// request serialization, retry logic on connection failures, structured
// logging integration, and parsing of the daemon's error responses into
// clear operator-facing messages.
//
// Response types in this package mirror the daemon API JSON shapes so that
// display functions can render results without touching daemon internals.
// Mutation endpoints can answer HTTP 202 when an identical request is
// already pending on the daemon's write batch; the client surfaces that as
// a suppressed outcome rather than an error.
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/cmd/curioctl/utils"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/netutil"
	"github.com/go-resty/resty/v2"
)

// Record represents a catalog record as returned by the daemon API.
type Record struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordList represents the record listing response with pagination metadata.
type RecordList struct {
	Records []Record `json:"records"`
	Count   int      `json:"count"`
	Total   int      `json:"total"`
	HasMore bool     `json:"has_more"`
}

// Selection represents the selection fetch response: one resolved page of
// records plus the full ordered ID list regardless of pagination.
type Selection struct {
	Records      []Record `json:"records"`
	SelectionIDs []int64  `json:"selection_ids"`
	Total        int      `json:"total"`
	HasMore      bool     `json:"has_more"`
}

// SelectOutcome represents the result of adding records to the selection.
type SelectOutcome struct {
	Added           []int64 `json:"added"`
	AlreadySelected []int64 `json:"already_selected"`
	Suppressed      bool    `json:"suppressed,omitempty"`
}

// ReorderOutcome represents the result of replacing the selection order.
type ReorderOutcome struct {
	Order      []int64 `json:"order"`
	Suppressed bool    `json:"suppressed,omitempty"`
}

// UnselectOutcome represents the result of removing records from the selection.
type UnselectOutcome struct {
	Removed    int  `json:"removed"`
	NotFound   int  `json:"not_found"`
	Suppressed bool `json:"suppressed,omitempty"`
}

// CreateOutcome represents the result of a record creation. Suppressed is
// true when an identical create was already pending and no new record was
// produced for this call.
type CreateOutcome struct {
	Record     *Record `json:"record,omitempty"`
	Suppressed bool    `json:"suppressed,omitempty"`
}

// QueueStats represents the daemon's scheduler introspection response.
type QueueStats struct {
	PendingCount          int `json:"pending_count"`
	PendingReadCount      int `json:"pending_read_count"`
	PendingWriteCount     int `json:"pending_write_count"`
	RunningReadBatchSize  int `json:"running_read_batch_size"`
	RunningWriteBatchSize int `json:"running_write_batch_size"`
}

// HealthInfo represents the daemon health check response. The queue fields
// snapshot scheduler pressure at the time of the check.
type HealthInfo struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	Uptime        string    `json:"uptime"`
	PendingOps    int       `json:"pending_ops"`
	RunningReads  int       `json:"running_reads"`
	RunningWrites int       `json:"running_writes"`
}

// apiError mirrors the daemon's JSON error envelope.
type apiError struct {
	Error      string  `json:"error"`
	Details    string  `json:"details,omitempty"`
	MissingIDs []int64 `json:"missing_ids,omitempty"`
	ID         int64   `json:"id,omitempty"`
}

// CurioAPIClient wraps the Resty HTTP client with curio-specific configuration
// for reliable daemon communication: timeouts, retry on connection errors,
// and structured request/response logging.
type CurioAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewCurioAPIClient creates a configured API client for the given daemon address.
func NewCurioAPIClient(apiAddr string, timeout int) *CurioAPIClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s/api/v1", apiAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	// Configure client with timeouts, headers, and retry logic
	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("curioctl/%s", config.Version))

	// Retry only on connection errors, not HTTP errors
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &CurioAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// connectErr wraps transport-level failures with the daemon address for
// clear troubleshooting messages.
func (api *CurioAPIClient) connectErr(err error) error {
	if netutil.IsConnectionRefusedError(err) {
		return fmt.Errorf("cannot reach curio daemon at %s: connection refused (is curiod running?)", api.baseURL)
	}
	return fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
}

// statusErr parses the daemon's JSON error envelope into a readable error.
func statusErr(resp *resty.Response) error {
	var apiErr apiError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
		if apiErr.Details != "" {
			return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Details)
		}
		if len(apiErr.MissingIDs) > 0 {
			return fmt.Errorf("%s (missing IDs: %s)", apiErr.Error, utils.JoinIDs(apiErr.MissingIDs))
		}
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
}

// suppressed reports whether the daemon answered with the duplicate
// suppression status for a pending identical mutation.
func suppressed(resp *resty.Response) bool {
	return resp.StatusCode() == 202
}

// ListRecords fetches a page of catalog records with an optional substring filter.
func (api *CurioAPIClient) ListRecords(filter string, offset, limit int) (*RecordList, error) {
	var result RecordList

	req := api.client.R().
		SetResult(&result).
		SetQueryParam("offset", fmt.Sprintf("%d", offset))
	if limit > 0 {
		req.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}
	if filter != "" {
		req.SetQueryParam("q", filter)
	}

	resp, err := req.Get("/records")
	if err != nil {
		return nil, api.connectErr(err)
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// CreateRecord creates a catalog record. A zero ID lets the daemon allocate
// the next unused one.
func (api *CurioAPIClient) CreateRecord(id int64, name, description, category string) (*CreateOutcome, error) {
	payload := map[string]any{
		"name": name,
	}
	if id > 0 {
		payload["id"] = id
	}
	if description != "" {
		payload["description"] = description
	}
	if category != "" {
		payload["category"] = category
	}

	var record Record
	resp, err := api.client.R().
		SetBody(payload).
		SetResult(&record).
		Post("/records")
	if err != nil {
		return nil, api.connectErr(err)
	}

	if suppressed(resp) {
		return &CreateOutcome{Suppressed: true}, nil
	}
	if resp.StatusCode() != 201 {
		return nil, statusErr(resp)
	}

	return &CreateOutcome{Record: &record}, nil
}

// GetSelection fetches the user's selection with pagination.
func (api *CurioAPIClient) GetSelection(offset, limit int) (*Selection, error) {
	var result Selection

	req := api.client.R().
		SetResult(&result).
		SetQueryParam("offset", fmt.Sprintf("%d", offset))
	if limit > 0 {
		req.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}

	resp, err := req.Get("/selection")
	if err != nil {
		return nil, api.connectErr(err)
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// SelectRecords adds record IDs to the selection. All named records must
// exist in the catalog or the daemon rejects the whole request.
func (api *CurioAPIClient) SelectRecords(ids []int64) (*SelectOutcome, error) {
	var result SelectOutcome

	resp, err := api.client.R().
		SetBody(map[string]any{"ids": ids}).
		SetResult(&result).
		Post("/selection")
	if err != nil {
		return nil, api.connectErr(err)
	}

	if suppressed(resp) {
		return &SelectOutcome{Suppressed: true}, nil
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// ReorderSelection replaces the selection order. The new order must be an
// exact permutation of the current selection.
func (api *CurioAPIClient) ReorderSelection(ids []int64) (*ReorderOutcome, error) {
	var result ReorderOutcome

	resp, err := api.client.R().
		SetBody(map[string]any{"ids": ids}).
		SetResult(&result).
		Put("/selection/order")
	if err != nil {
		return nil, api.connectErr(err)
	}

	if suppressed(resp) {
		return &ReorderOutcome{Suppressed: true}, nil
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// UnselectRecords removes record IDs from the selection. Partial removal is
// a success: the outcome reports removed and not-found counts.
func (api *CurioAPIClient) UnselectRecords(ids []int64) (*UnselectOutcome, error) {
	var result UnselectOutcome

	resp, err := api.client.R().
		SetBody(map[string]any{"ids": ids}).
		SetResult(&result).
		Delete("/selection")
	if err != nil {
		return nil, api.connectErr(err)
	}

	if suppressed(resp) {
		return &UnselectOutcome{Suppressed: true}, nil
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// GetQueueStats fetches the daemon's scheduler introspection counters.
func (api *CurioAPIClient) GetQueueStats() (*QueueStats, error) {
	var result QueueStats

	resp, err := api.client.R().
		SetResult(&result).
		Get("/queue/stats")
	if err != nil {
		return nil, api.connectErr(err)
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// GetHealth fetches the daemon health status.
func (api *CurioAPIClient) GetHealth() (*HealthInfo, error) {
	var result HealthInfo

	resp, err := api.client.R().
		SetResult(&result).
		Get("/health")
	if err != nil {
		return nil, api.connectErr(err)
	}
	if resp.StatusCode() != 200 {
		return nil, statusErr(resp)
	}

	return &result, nil
}

// CreateAPIClient creates an API client from the current global CLI
// configuration so commands never manage connection settings themselves.
func CreateAPIClient() *CurioAPIClient {
	return NewCurioAPIClient(config.Global.APIAddr, config.Global.Timeout)
}
