// Package engine implements the typed HTTP client for the external
// calculation engine. Every operation is a single request/response exchange
// with no retries; failures split into TransportError (connection, status,
// decoding) and EngineError (the engine reported success=false).
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds each exchange with the engine.
const DefaultTimeout = 15 * time.Second

const maxResponseBytes = 4 << 20

// Client talks to the calculation engine over HTTP/JSON.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an engine client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SimulateSimple runs a simple-mode simulation.
func (c *Client) SimulateSimple(ctx context.Context, req SimpleSimulationRequest) (*SimulationResponse, error) {
	const op = "engine.SimulateSimple"

	var resp SimulationResponse
	if err := c.postJSON(ctx, op, "/api/v1/simulate/simple", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &EngineError{Op: op, Message: resp.Error}
	}
	return &resp, nil
}

// SimulateExpert runs an expert-mode simulation.
func (c *Client) SimulateExpert(ctx context.Context, req ExpertSimulationRequest) (*ExpertSimulationResponse, error) {
	const op = "engine.SimulateExpert"

	var resp ExpertSimulationResponse
	if err := c.postJSON(ctx, op, "/api/v1/expert/simulate", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &EngineError{Op: op, Message: resp.Error}
	}
	resp.LMPStatus.normalize()
	return &resp, nil
}

// CompareFiscalRegimes compares the micro and réel tax regimes.
func (c *Client) CompareFiscalRegimes(ctx context.Context, req FiscalComparisonRequest) (*FiscalComparisonResponse, error) {
	const op = "engine.CompareFiscalRegimes"

	var resp FiscalComparisonResponse
	if err := c.postJSON(ctx, op, "/api/v1/expert/fiscal/compare", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckLMPStatus checks the professional furnished-rental qualification.
func (c *Client) CheckLMPStatus(ctx context.Context, req LMPCheckRequest) (*LMPStatus, error) {
	const op = "engine.CheckLMPStatus"

	var resp LMPStatus
	if err := c.postJSON(ctx, op, "/api/v1/expert/fiscal/lmp-check", req, &resp); err != nil {
		return nil, err
	}
	resp.normalize()
	return &resp, nil
}

// RunSensitivity runs one sensitivity sweep.
func (c *Client) RunSensitivity(ctx context.Context, req SensitivityRequest) (*SensitivityResponse, error) {
	const op = "engine.RunSensitivity"

	var resp SensitivityResponse
	if err := c.postJSON(ctx, op, "/api/v1/expert/sensitivity", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &EngineError{Op: op, Message: resp.Error}
	}
	return &resp, nil
}

// ListLocations returns the selectable locations.
func (c *Client) ListLocations(ctx context.Context) ([]string, error) {
	const op = "engine.ListLocations"

	var resp struct {
		Locations []string `json:"locations"`
	}
	if err := c.getJSON(ctx, op, "/api/v1/data/locations", &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

// LocationDefaults returns the pre-fill defaults for one location.
func (c *Client) LocationDefaults(ctx context.Context, location string) (*LocationDefaults, error) {
	const op = "engine.LocationDefaults"

	path := "/api/v1/data/locations/" + url.PathEscape(location)
	var resp LocationDefaults
	if err := c.getJSON(ctx, op, path, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &EngineError{Op: op, Message: resp.Error}
	}
	return &resp, nil
}

// Health checks that the engine is reachable.
func (c *Client) Health(ctx context.Context) error {
	const op = "engine.Health"

	var resp struct {
		Status string `json:"status"`
	}
	return c.getJSON(ctx, op, "/health", &resp)
}

func (c *Client) postJSON(ctx context.Context, op, path string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, op, out)
}

func (c *Client) getJSON(ctx context.Context, op, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	return c.do(req, op, out)
}

func (c *Client) do(req *http.Request, op string, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("engine request failed",
			zap.String("op", op),
			zap.String("requestId", requestID),
			zap.Error(err),
		)
		return &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		c.logger.Warn("engine returned non-2xx status",
			zap.String("op", op),
			zap.String("requestId", requestID),
			zap.Int("status", resp.StatusCode),
		)
		return &TransportError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Debug("engine request completed",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
