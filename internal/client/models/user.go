// Package models holds the client-side data model. Most shapes here come
// from the remote API and are only partially validated, so several types
// stay deliberately loose at the boundary.
package models

// User is the authenticated actor as reported by the server. The server is
// free to change the shape, so the record is kept untyped and read through
// accessor helpers.
type User map[string]any

// DisplayName returns the best human-readable name available, falling back
// through the keys the server has been observed to use.
func (u User) DisplayName() string {
	for _, key := range []string{"name", "full_name", "username", "email"} {
		if v, ok := u[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// IsSuperuser reports whether the record carries the superuser flag.
func (u User) IsSuperuser() bool {
	v, ok := u["is_superuser"].(bool)
	return ok && v
}
