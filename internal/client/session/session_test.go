package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/client/repositories/tokens"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	db, err := sql.Open("sqlite", fmt.Sprintf("file:session_tests_%d?mode=memory&cache=shared", dbSeq))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func newManager(t *testing.T) (*Manager, *sql.DB, tokens.Store) {
	t.Helper()
	db := setupDB(t)
	ts := tokens.NewFileStore(t.TempDir())
	log := logging.NewSlogLogger(slog.Default())
	return NewManager(db, ts, log), db, ts
}

func seedUser(t *testing.T, db *sql.DB, user models.User) {
	t.Helper()
	data, err := json.Marshal(user)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES('wedmac_admin_user', ?)`, data)
	require.NoError(t, err)
}

func TestRestore_AuthPredicate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		seedUser bool
		seedTok  bool
		want     State
	}{
		{"user and token", true, true, StateAuthenticated},
		{"user only", true, false, StateUnauthenticated},
		{"token only", false, true, StateUnauthenticated},
		{"neither", false, false, StateUnauthenticated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, db, ts := newManager(t)
			if tc.seedUser {
				seedUser(t, db, models.User{"name": "Admin"})
			}
			if tc.seedTok {
				require.NoError(t, ts.Set(ctx, "tok123"))
			}

			require.Equal(t, StateLoading, m.State(), "state must be loading before restore")
			require.Equal(t, tc.want, m.Restore(ctx))
			require.Equal(t, tc.want == StateAuthenticated, m.IsAuthenticated())
		})
	}
}

func TestRestore_PicksUpStoredValues(t *testing.T) {
	ctx := context.Background()
	m, db, ts := newManager(t)

	seedUser(t, db, models.User{"name": "Admin", "is_superuser": true})
	require.NoError(t, ts.Set(ctx, "tok123"))

	require.Equal(t, StateAuthenticated, m.Restore(ctx))
	require.Equal(t, "tok123", m.Token())
	require.Equal(t, "Admin", m.User().DisplayName())
}

func TestRestore_CorruptUserRecordIsUnauthenticated(t *testing.T) {
	ctx := context.Background()
	m, db, ts := newManager(t)

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES('wedmac_admin_user', 'not json')`)
	require.NoError(t, err)
	require.NoError(t, ts.Set(ctx, "tok123"))

	require.Equal(t, StateUnauthenticated, m.Restore(ctx))
}

func TestLoginWithToken_PersistsBothSlots(t *testing.T) {
	ctx := context.Background()
	m, db, ts := newManager(t)

	user := models.User{"name": "Admin"}
	require.NoError(t, m.LoginWithToken(ctx, "tok123", user))

	require.True(t, m.IsAuthenticated())
	require.Equal(t, "tok123", m.Token())
	require.False(t, m.LoggedInAt().IsZero())

	// A fresh manager over the same stores must restore the session.
	fresh := NewManager(db, ts, logging.NewSlogLogger(slog.Default()))
	require.Equal(t, StateAuthenticated, fresh.Restore(ctx))
	require.Equal(t, "tok123", fresh.Token())
	require.Equal(t, "Admin", fresh.User().DisplayName())
}

func TestLoginWithToken_NilUserRecoversPersisted(t *testing.T) {
	ctx := context.Background()
	m, db, _ := newManager(t)

	seedUser(t, db, models.User{"name": "Persisted"})
	require.NoError(t, m.LoginWithToken(ctx, "tok456", nil))

	require.Equal(t, "Persisted", m.User().DisplayName())
	require.Equal(t, "tok456", m.Token())
}

func TestLogout_ClearsBothSlots(t *testing.T) {
	ctx := context.Background()
	m, db, ts := newManager(t)

	require.NoError(t, m.LoginWithToken(ctx, "tok123", models.User{"name": "Admin"}))
	require.NoError(t, m.Logout(ctx))

	require.False(t, m.IsAuthenticated())
	require.Empty(t, m.Token())
	require.Nil(t, m.User())

	// Simulated fresh load reports unauthenticated.
	fresh := NewManager(db, ts, logging.NewSlogLogger(slog.Default()))
	require.Equal(t, StateUnauthenticated, fresh.Restore(ctx))
}

func TestLogout_IdempotentWithoutSession(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))
	require.False(t, m.IsAuthenticated())
}
