// Package api is the HTTPS/JSON client for the WedMac back-office API.
// Response shapes are treated as server-defined: the auth endpoints decode
// into untyped maps probed by the session package, and list endpoints
// tolerate the shape variants the backend has been seen to return.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

// API is the surface consumed by the services layer. A fake implementation
// backs the unit tests.
type API interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (map[string]any, error)
	Login(ctx context.Context, username, password string) (map[string]any, error)

	ListTickets(ctx context.Context) ([]models.Ticket, error)
	UpdateTicket(ctx context.Context, id int, status, adminResponse string) error
	DeleteTicket(ctx context.Context, id int) error
	ListActivityLogs(ctx context.Context, page, pageSize int) (*models.ActivityLogPage, error)

	CreateLeads(ctx context.Context, leads []models.Lead) (*models.BulkCreateResult, error)
}

// TokenSource supplies the current bearer token; an empty string means the
// request goes out unauthenticated. The session manager implements this.
type TokenSource interface {
	Token() string
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	source  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, source TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		source:  source,
		log:     log.With("component", "api"),
	}
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses become *Error carrying the best-effort message
// extracted from the body. There is no retry and no client-side timeout;
// cancellation is the caller's context.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.source.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(resp.StatusCode, data)
		c.log.Warn(ctx, "api call failed",
			"method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("malformed response body: %w", err)
	}
	return nil
}
