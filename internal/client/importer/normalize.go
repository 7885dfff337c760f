// Package importer turns uploaded spreadsheets into normalized lead records
// and renders per-row submission reports. Parsing is lossless on headers: a
// column either maps to a canonical field through the synonym table or falls
// back to its own normalized name, so no column is ever dropped.
package importer

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/wedmac/wedmac-admin/internal/client/models"
)

// headerSynonyms maps normalized spreadsheet headers to canonical lead
// fields. Keys are in normalized form (see NormalizeHeader).
var headerSynonyms = map[string]string{
	"mobile":         "phone",
	"mobile_number":  "phone",
	"mobile_no":      "phone",
	"phone_number":   "phone",
	"phone_no":       "phone",
	"contact":        "phone",
	"contact_number": "phone",

	"firstname":  "first_name",
	"lastname":   "last_name",
	"fname":      "first_name",
	"lname":      "last_name",

	"email_address": "email",
	"email_id":      "email",
	"mail":          "email",

	"city": "location",
	"town": "location",
	"place": "location",

	"eventtype":  "event_type",
	"event":      "event_type",
	"occasion":   "event_type",

	"date":         "booking_date",
	"event_date":   "booking_date",
	"bookingdate":  "booking_date",
	"date_of_event": "booking_date",

	"makeup_type":  "makeup_types",
	"makeuptype":   "makeup_types",
	"makeuptypes":  "makeup_types",

	"budget":       "budget_range",
	"budgetrange":  "budget_range",

	"artist":       "requested_artist",
	"artist_id":    "requested_artist",
	"requestedartist": "requested_artist",

	"claims":    "max_claims",
	"maxclaims": "max_claims",

	"note":     "notes",
	"comment":  "notes",
	"comments": "notes",
	"remark":   "notes",
	"remarks":  "notes",
}

// numericFields are coerced to numbers when the cell looks numeric.
var numericFields = map[string]struct{}{
	"service":          {},
	"budget_range":     {},
	"requested_artist": {},
	"max_claims":       {},
}

// NormalizeHeader lowercases the header, turns spaces into underscores and
// strips everything that is not a letter, digit or underscore.
func NormalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(header) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '_':
			b.WriteByte('_')
		}
	}
	return b.String()
}

// CanonicalKey resolves a raw spreadsheet header to the lead field it feeds.
// Unknown headers keep their normalized form rather than being dropped.
func CanonicalKey(header string) string {
	norm := NormalizeHeader(header)
	if canonical, ok := headerSynonyms[norm]; ok {
		return canonical
	}
	return norm
}

// NormalizeRecord builds one sparse lead from a header row and a data row.
// Fields whose value resolves to empty are omitted entirely.
func NormalizeRecord(headers, cells []string) models.Lead {
	lead := models.Lead{}
	for i, header := range headers {
		if i >= len(cells) {
			break
		}
		key := CanonicalKey(header)
		if key == "" {
			continue
		}
		if value := normalizeValue(key, cells[i]); value != nil {
			lead[key] = value
		}
	}
	return lead
}

func normalizeValue(key, raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	switch key {
	case "makeup_types":
		if list := splitList(s); len(list) > 0 {
			return list
		}
		return nil
	case "booking_date":
		return normalizeDate(s)
	}

	if _, ok := numericFields[key]; ok {
		if n, isNum := coerceNumber(s); isNum {
			return n
		}
	}
	return s
}

// splitList breaks a delimited cell into its parts. Comma, semicolon and
// pipe all act as delimiters.
func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// coerceNumber parses a numeric-looking cell. Integral floats collapse to
// int so "2.0" and "2" submit identically.
func coerceNumber(s string) (any, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	if f == float64(int64(f)) {
		return int(f), true
	}
	return f, true
}

// excelEpoch is day zero of the 1900 date system (accounting for the
// historical leap-year bug, which shifts the epoch to 1899-12-30).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order against free-text date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// normalizeDate renders a date cell as YYYY-MM-DD. Spreadsheet serial
// encoding and the common textual formats are both handled; anything
// unrecognized passes through unchanged so the server can reject it with a
// row-level error instead of the value silently disappearing.
func normalizeDate(s string) string {
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		// Plausible serial range: 1900-03-01 through the year 2199.
		if serial >= 61 && serial < 109574 {
			return excelEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
		}
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Format("2006-01-02")
		}
	}
	return s
}
