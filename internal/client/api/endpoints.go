package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wedmac/wedmac-admin/internal/client/models"
)

// SendOTP asks the backend to text a one-time code to the given phone.
// The number must already be validated by the caller.
func (c *HTTPClient) SendOTP(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return c.do(ctx, http.MethodPost, "/api/superadmin/login/", body, nil)
}

// VerifyOTP exchanges phone+code for a credential. The raw response is
// returned untyped; token and user extraction happen in the session package.
func (c *HTTPClient) VerifyOTP(ctx context.Context, phone, otp string) (map[string]any, error) {
	body := map[string]string{"phone": phone, "otp": otp}
	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/superadmin/verify-otp/", body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Login is the legacy username/password path.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (map[string]any, error) {
	body := map[string]string{"username": username, "password": password}
	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/superadmin/login/", body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ListTickets fetches all support tickets. The endpoint has returned both a
// bare array and a {"tickets": [...]} wrapper; both decode here.
func (c *HTTPClient) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/support/admin/tickets/", nil, &raw); err != nil {
		return nil, err
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(raw, &tickets); err == nil {
		return tickets, nil
	}

	var wrapped struct {
		Tickets []models.Ticket `json:"tickets"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected tickets response shape: %w", err)
	}
	return wrapped.Tickets, nil
}

// UpdateTicket sets the status and admin response of one ticket.
func (c *HTTPClient) UpdateTicket(ctx context.Context, id int, status, adminResponse string) error {
	body := map[string]string{"status": status, "admin_response": adminResponse}
	path := fmt.Sprintf("/api/support/admin/tickets/%d/", id)
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *HTTPClient) DeleteTicket(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/support/admin/tickets/%d/delete/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListActivityLogs fetches one page of artist activity logs.
func (c *HTTPClient) ListActivityLogs(ctx context.Context, page, pageSize int) (*models.ActivityLogPage, error) {
	path := fmt.Sprintf("/api/artists/activity-logs/?page=%d&page_size=%d", page, pageSize)
	var out models.ActivityLogPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLeads submits the whole parsed batch in one call. A response whose
// "results" field is missing or not an array yields Results == nil; callers
// then report the generic message instead of per-row outcomes.
func (c *HTTPClient) CreateLeads(ctx context.Context, leads []models.Lead) (*models.BulkCreateResult, error) {
	body := map[string]any{"leads": leads}

	var raw struct {
		Message string          `json:"message"`
		Results json.RawMessage `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/leads/admin/create-multiple/", body, &raw); err != nil {
		return nil, err
	}

	out := &models.BulkCreateResult{Message: raw.Message}

	var results []models.ImportResult
	if len(raw.Results) > 0 && json.Unmarshal(raw.Results, &results) == nil {
		out.Results = results
	}
	return out, nil
}
