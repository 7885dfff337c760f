package models

import "encoding/json"

// Lead is a single record destined for bulk creation: a sparse mapping from
// canonical field keys to scalar or array values. Empty fields are never
// present.
type Lead map[string]any

// ImportResult is the outcome of submitting one Lead. Exactly one of Lead
// and Errors is expected to be set; both payloads are server-defined and
// treated as opaque.
type ImportResult struct {
	Success bool            `json:"success"`
	Lead    json.RawMessage `json:"lead,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

// Detail renders the opaque payload of the result as text for reports.
func (r ImportResult) Detail() string {
	raw := r.Errors
	if r.Success {
		raw = r.Lead
	}
	if len(raw) == 0 {
		return ""
	}
	return string(raw)
}

// BulkCreateResult is the server's answer to a batch submission. Results is
// nil when the response carried no array-typed per-row results; callers then
// fall back to the generic Message.
type BulkCreateResult struct {
	Message string
	Results []ImportResult
}
