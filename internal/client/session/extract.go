package session

import "github.com/wedmac/wedmac-admin/internal/client/models"

// The login and verify-OTP endpoints have shipped the bearer token under a
// number of different keys over time. Rather than encoding one rigid shape,
// the raw response is probed by an ordered list of extractors and the first
// hit wins.

type tokenExtractor func(raw map[string]any) string

var tokenExtractors = []tokenExtractor{
	topLevelString("access"),
	topLevelString("token"),
	topLevelString("accessToken"),
	topLevelString("access_token"),
	topLevelString("authToken"),
	nestedString("data", "access"),
	nestedString("data", "token"),
}

func topLevelString(key string) tokenExtractor {
	return func(raw map[string]any) string {
		s, _ := raw[key].(string)
		return s
	}
}

func nestedString(outer, inner string) tokenExtractor {
	return func(raw map[string]any) string {
		m, ok := raw[outer].(map[string]any)
		if !ok {
			return ""
		}
		s, _ := m[inner].(string)
		return s
	}
}

// ExtractToken searches raw for a bearer token under every recognized key.
// The boolean is false when no key held a non-empty string.
func ExtractToken(raw map[string]any) (string, bool) {
	for _, extract := range tokenExtractors {
		if tok := extract(raw); tok != "" {
			return tok, true
		}
	}
	return "", false
}

// ExtractUser searches raw for a user object under the recognized keys.
func ExtractUser(raw map[string]any) (models.User, bool) {
	for _, key := range []string{"user", "admin"} {
		if m, ok := raw[key].(map[string]any); ok {
			return models.User(m), true
		}
	}
	if data, ok := raw["data"].(map[string]any); ok {
		if m, ok := data["user"].(map[string]any); ok {
			return models.User(m), true
		}
	}
	return nil, false
}

// SynthesizeUser builds the minimal user record used when the server omits
// one from a successful verification.
func SynthesizeUser(username string) models.User {
	return models.User{"username": username, "is_superuser": true}
}
