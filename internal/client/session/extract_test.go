package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractToken_AllRecognizedKeys(t *testing.T) {
	shapes := []map[string]any{
		{"access": "tok123"},
		{"token": "tok123"},
		{"accessToken": "tok123"},
		{"access_token": "tok123"},
		{"authToken": "tok123"},
		{"data": map[string]any{"access": "tok123"}},
		{"data": map[string]any{"token": "tok123"}},
	}

	for i, raw := range shapes {
		t.Run(fmt.Sprintf("shape_%d", i), func(t *testing.T) {
			tok, ok := ExtractToken(raw)
			require.True(t, ok)
			require.Equal(t, "tok123", tok)
		})
	}
}

func TestExtractToken_OrderedFirstHitWins(t *testing.T) {
	raw := map[string]any{
		"access": "first",
		"token":  "second",
	}
	tok, ok := ExtractToken(raw)
	require.True(t, ok)
	require.Equal(t, "first", tok)
}

func TestExtractToken_NoRecognizedKey(t *testing.T) {
	tok, ok := ExtractToken(map[string]any{
		"status":  "ok",
		"access":  42,              // wrong type
		"data":    "not an object", // wrong type
		"message": "logged in",
	})
	require.False(t, ok)
	require.Empty(t, tok)
}

func TestExtractUser_RecognizedKeys(t *testing.T) {
	for _, raw := range []map[string]any{
		{"user": map[string]any{"name": "Admin"}},
		{"admin": map[string]any{"name": "Admin"}},
		{"data": map[string]any{"user": map[string]any{"name": "Admin"}}},
	} {
		user, ok := ExtractUser(raw)
		require.True(t, ok)
		require.Equal(t, "Admin", user.DisplayName())
	}
}

func TestExtractUser_Missing(t *testing.T) {
	user, ok := ExtractUser(map[string]any{"access": "tok123"})
	require.False(t, ok)
	require.Nil(t, user)
}

func TestSynthesizeUser(t *testing.T) {
	user := SynthesizeUser("9876543210")
	require.Equal(t, "9876543210", user.DisplayName())
	require.True(t, user.IsSuperuser())
}
