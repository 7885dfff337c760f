package models

// Ticket is a support ticket as returned by the admin tickets endpoint.
type Ticket struct {
	ID            int    `json:"id"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	AdminResponse string `json:"admin_response"`
	UserEmail     string `json:"user_email"`
	CreatedAt     string `json:"created_at"`
}

// ActivityLogPage is one page of artist activity logs. Individual log
// entries are server-defined and rendered as-is.
type ActivityLogPage struct {
	Logs        []map[string]any `json:"logs"`
	TotalCount  int              `json:"total_count"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
	PageSize    int              `json:"page_size"`
}
