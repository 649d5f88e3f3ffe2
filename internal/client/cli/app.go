package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/appointo/internal/client/auth"
	"github.com/dmitrijs2005/appointo/internal/client/config"
	"github.com/dmitrijs2005/appointo/internal/client/localdb"
	"github.com/dmitrijs2005/appointo/internal/client/models"
	"github.com/dmitrijs2005/appointo/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/appointo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/appointo/internal/client/services"
	"github.com/dmitrijs2005/appointo/internal/cryptox"
	"github.com/dmitrijs2005/appointo/internal/logging"
)

// claimsParser decodes signed session tokens; only JWT tokens have claims.
type claimsParser interface {
	Parse(token string) (*auth.Claims, error)
}

type App struct {
	config   *config.Config
	session  services.SessionService
	accounts accounts.Repository
	claims   claimsParser
	logger   logging.Logger
	user     *models.Account
	reader   *bufio.Reader
	out      io.Writer
	closers  []func() error
}

// NewApp builds the session stack described by c: a SQLite store at
// c.DBPath (or an in-memory one when c.Ephemeral is set), the seeded account
// directory, and the configured token issuer and credential check.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{
		config: c,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	issuer, err := newTokenIssuer(c)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	verifier, err := newPasswordVerifier(c)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	if p, ok := issuer.(claimsParser); ok {
		app.claims = p
	}

	app.accounts = accounts.NewSeededRepository()
	app.session = services.NewSessionService(
		app.accounts,
		store,
		services.WithDelay(c.LoginDelay),
		services.WithTokenIssuer(issuer),
		services.WithPasswordVerifier(verifier),
		services.WithLogger(logger),
	)
	return app, nil
}

func (a *App) openStore(ctx context.Context) (metadata.Repository, error) {
	if a.config.Ephemeral {
		a.logger.Debug(ctx, "using in-memory session store")
		return metadata.NewMemoryRepository(), nil
	}

	db, err := localdb.Open(ctx, a.config.DBPath)
	if err != nil {
		a.logger.Error(ctx, "error initializing database", "path", a.config.DBPath, "error", err)
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	return metadata.NewSQLiteRepository(db), nil
}

func newTokenIssuer(c *config.Config) (auth.TokenIssuer, error) {
	switch c.TokenMode {
	case config.TokenModeJWT:
		iss, err := auth.NewJWTIssuer([]byte(c.TokenSecret))
		if err != nil {
			return nil, err
		}
		return iss, nil
	case config.TokenModeMock, "":
		return auth.MockIssuer{}, nil
	}
	return nil, fmt.Errorf("%w: unknown token_mode %q", config.ErrInvalidConfig, c.TokenMode)
}

func newPasswordVerifier(c *config.Config) (cryptox.PasswordVerifier, error) {
	switch c.CredentialCheck {
	case config.CredentialCheckArgon2:
		v, err := cryptox.NewArgon2Verifier(cryptox.SentinelPassword)
		if err != nil {
			return nil, err
		}
		return v, nil
	case config.CredentialCheckSentinel, "":
		return cryptox.SentinelVerifier{}, nil
	}
	return nil, fmt.Errorf("%w: unknown credential_check %q", config.ErrInvalidConfig, c.CredentialCheck)
}

// Run restores the persisted session and serves the REPL until the user
// exits or input ends. Storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	a.restore(ctx)

	fmt.Fprintln(a.out, "Welcome to Appointo (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)

	return a.Close()
}

// Close releases storage held by the app. It is safe to call more than once.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// restore reads the persisted account exactly once. Absent or unreadable
// state leaves the app anonymous.
func (a *App) restore(ctx context.Context) {
	acc, err := a.session.CurrentUser(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to restore session", "error", err)
		return
	}
	a.user = acc
	if acc != nil {
		a.logger.Info(ctx, "session restored", "account_id", acc.ID)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.user.Name, a.user.Role)
}
