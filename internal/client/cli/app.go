package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/wedmac/wedmac-admin/internal/client/api"
	"github.com/wedmac/wedmac-admin/internal/client/config"
	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/client/repositories/tokens"
	"github.com/wedmac/wedmac-admin/internal/client/services"
	"github.com/wedmac/wedmac-admin/internal/client/session"
	"github.com/wedmac/wedmac-admin/internal/client/store"
	"github.com/wedmac/wedmac-admin/internal/filex"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

// App wires the services together and drives the interactive loop. One
// command runs at a time; a second submission cannot be issued while the
// first is in flight because the prompt only returns when the command does.
type App struct {
	config  *config.Config
	session *session.Manager
	auth    services.AuthService
	admin   services.AdminService
	leads   services.LeadService
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB

	// Parsed batch awaiting submission, plus the outcome of the last one.
	pending   []models.Lead
	results   []models.ImportResult
	submitted int

	// Tick interval of the resend countdown; shortened in tests.
	cooldownTick time.Duration
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	dataDir := cfg.DataDir
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dataDir = filepath.Join(base, "wedmac-admin")
	}
	dataDir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(ctx, filepath.Join(dataDir, "session.db"))
	if err != nil {
		return nil, err
	}

	sess := session.NewManager(db, tokens.NewFileStore(""), log)
	client := api.NewHTTPClient(cfg.APIBaseURL, sess, log)

	return &App{
		config:       cfg,
		session:      sess,
		auth:         services.NewAuthService(client, sess, log),
		admin:        services.NewAdminService(client, log),
		leads:        services.NewLeadService(client, log),
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		db:           db,
		cooldownTick: time.Second,
	}, nil
}

// Run restores any persisted session and enters the interactive loop.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	a.Root(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
