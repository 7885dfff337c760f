// Package session owns the authenticated-user lifecycle: committing a
// verified credential, restoring it at startup, exposing the current state,
// and logout. It is the only writer of the two storage slots — the durable
// user record and the session-scoped access token.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/client/repositories/metadata"
	"github.com/wedmac/wedmac-admin/internal/client/repositories/tokens"
	"github.com/wedmac/wedmac-admin/internal/dbx"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

// State of the session. Protected commands render nothing until the state
// has left StateLoading.
type State string

const (
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// Storage keys inside the durable slot.
const (
	userKey      = "wedmac_admin_user"
	loginTimeKey = "logged_in_at"
)

// Manager holds the in-memory session and mediates all access to the two
// storage slots.
type Manager struct {
	db     *sql.DB
	tokens tokens.Store
	log    logging.Logger

	mu       sync.RWMutex
	state    State
	token    string
	user     models.User
	loggedAt time.Time
}

func NewManager(db *sql.DB, tokenStore tokens.Store, log logging.Logger) *Manager {
	return &Manager{
		db:     db,
		tokens: tokenStore,
		log:    log.With("component", "session"),
		state:  StateLoading,
	}
}

func (m *Manager) users() metadata.Repository {
	return metadata.NewSQLiteRepository(m.db)
}

// Restore reads both storage slots once at startup. The session is
// authenticated if and only if both the user record and the token are
// present; anything else, including read errors, leaves it unauthenticated.
func (m *Manager) Restore(ctx context.Context) State {
	user := m.readUser(ctx)
	token, err := m.tokens.Get(ctx)
	if err != nil {
		m.log.Warn(ctx, "could not read token slot", "error", err)
		token = ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if user != nil && token != "" {
		m.state = StateAuthenticated
		m.token = token
		m.user = user
		m.loggedAt = m.readLoginTime(ctx)
	} else {
		m.state = StateUnauthenticated
		m.token = ""
		m.user = nil
	}
	return m.state
}

func (m *Manager) readUser(ctx context.Context) models.User {
	data, err := m.users().Get(ctx, userKey)
	if err != nil {
		m.log.Warn(ctx, "could not read user slot", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		m.log.Warn(ctx, "stored user record is not valid JSON", "error", err)
		return nil
	}
	return user
}

func (m *Manager) readLoginTime(ctx context.Context) time.Time {
	data, err := m.users().Get(ctx, loginTimeKey)
	if err != nil || len(data) == 0 {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}
	}
	return ts
}

// LoginWithToken commits an already-obtained token and optional user object
// without network I/O. A nil user falls back to the previously persisted
// record so dependent views keep a name to show.
func (m *Manager) LoginWithToken(ctx context.Context, token string, user models.User) error {
	if user == nil {
		user = m.readUser(ctx)
	}

	now := time.Now()

	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to serialize user record: %w", err)
		}
		err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := metadata.NewSQLiteRepository(tx)
			if err := repo.Set(ctx, userKey, data); err != nil {
				return err
			}
			return repo.Set(ctx, loginTimeKey, []byte(now.Format(time.RFC3339)))
		})
		if err != nil {
			return fmt.Errorf("failed to persist user record: %w", err)
		}
	}

	if err := m.tokens.Set(ctx, token); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticated
	m.token = token
	m.user = user
	m.loggedAt = now
	return nil
}

// Logout clears both storage slots and drops the in-memory session.
// Idempotent; safe to call when no session exists.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.users().Clear(ctx); err != nil {
		return err
	}
	if err := m.tokens.Clear(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateUnauthenticated
	m.token = ""
	m.user = nil
	m.loggedAt = time.Time{}
	return nil
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated is the sole predicate used to gate protected commands.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Token returns the current bearer token, or an empty string. The API client
// consumes this as its token source.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the current user record, possibly nil.
func (m *Manager) User() models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// LoggedInAt returns when the current credential was committed, or the zero
// time when unknown.
func (m *Manager) LoggedInAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loggedAt
}
