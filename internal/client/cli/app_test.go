package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/appointo/internal/client/auth"
	"github.com/dmitrijs2005/appointo/internal/client/config"
	"github.com/dmitrijs2005/appointo/internal/client/services"
	"github.com/dmitrijs2005/appointo/internal/cryptox"
	"github.com/dmitrijs2005/appointo/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareApp(s services.SessionService, input string) *App {
	return &App{
		session: s,
		logger:  logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &bytes.Buffer{},
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LoginDelay = 0
	cfg.DBPath = filepath.Join(t.TempDir(), "session.db")
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config, input string) (*App, *bytes.Buffer) {
	t.Helper()
	app, err := NewApp(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	var out bytes.Buffer
	app.reader = bufio.NewReader(strings.NewReader(input))
	app.out = &out
	return app, &out
}

func TestNewTokenIssuer(t *testing.T) {
	cfg := testConfig(t)

	iss, err := newTokenIssuer(cfg)
	require.NoError(t, err)
	assert.IsType(t, auth.MockIssuer{}, iss)

	cfg.TokenMode, cfg.TokenSecret = config.TokenModeJWT, "secret"
	iss, err = newTokenIssuer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &auth.JWTIssuer{}, iss)

	cfg.TokenSecret = ""
	_, err = newTokenIssuer(cfg)
	require.ErrorIs(t, err, auth.ErrEmptySecret)

	cfg.TokenMode = "opaque"
	_, err = newTokenIssuer(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewPasswordVerifier(t *testing.T) {
	cfg := testConfig(t)

	v, err := newPasswordVerifier(cfg)
	require.NoError(t, err)
	assert.IsType(t, cryptox.SentinelVerifier{}, v)

	cfg.CredentialCheck = config.CredentialCheckArgon2
	v, err = newPasswordVerifier(cfg)
	require.NoError(t, err)
	assert.True(t, v.Verify("password"))
	assert.False(t, v.Verify("Password"))

	cfg.CredentialCheck = "bcrypt"
	_, err = newPasswordVerifier(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = filepath.Join(t.TempDir(), "missing-dir", "session.db")

	_, err := NewApp(context.Background(), cfg, logging.Discard())
	require.Error(t, err)
}

func TestRun_ScriptedSession(t *testing.T) {
	origIs := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origIs })

	cfg := testConfig(t)
	cfg.Ephemeral = true

	input := strings.Join([]string{
		"whoami",
		"login", "user@example.com", "nope",
		"login", "user@example.com", "password",
		"whoami",
		"token",
		"logout",
		"status",
		"register", "Jane Roe", "jane@example.com", "pw1", "pw2",
		"register", "Jane Roe", "jane@example.com", "pw", "pw",
		"whoami",
		"dashboard",
		"admin",
		"login", "admin@example.com", "password",
		"admin",
		"reset",
		"dashboard",
		"services",
		"exit",
	}, "\n") + "\n"

	app, out := newTestApp(t, cfg, input)
	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Welcome to Appointo")
	assert.Contains(t, s, "Not logged in")
	assert.Contains(t, s, "Invalid email or password")
	assert.Contains(t, s, "Welcome back, John Doe!")
	assert.Contains(t, s, "Email: user@example.com")
	assert.Contains(t, s, "mock-jwt-token-1")
	assert.Contains(t, s, "Logged out")
	assert.Contains(t, s, "Anonymous")
	assert.Contains(t, s, "Passwords do not match")
	assert.Contains(t, s, "Welcome, Jane Roe!")
	assert.Contains(t, s, "ID:    3")
	assert.Contains(t, s, "appointo (Jane Roe user)> ")
	assert.Contains(t, s, "Upcoming: 3")
	assert.Contains(t, s, "Admin access required")
	assert.Contains(t, s, "Admin panel: 3 accounts")
	assert.Contains(t, s, "Local data cleared (2 entries)")
	assert.Contains(t, s, "Please log in first")
	assert.Contains(t, s, "Spa & Wellness")
	assert.Contains(t, s, "Bye!")
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, _ := newTestApp(t, cfg, "")
	stubInputs(t, []string{"admin@example.com"}, []string{"password"})
	require.NoError(t, first.Login(ctx))
	require.NoError(t, first.Close())

	second, out := newTestApp(t, cfg, "")
	second.restore(ctx)
	require.NotNil(t, second.user)
	assert.Equal(t, "2", second.user.ID)

	require.NoError(t, second.Token(ctx))
	assert.Equal(t, "mock-jwt-token-2\n", out.String())

	require.NoError(t, second.Logout(ctx))
	require.NoError(t, second.Close())

	third, _ := newTestApp(t, cfg, "")
	third.restore(ctx)
	assert.Nil(t, third.user)
}

func TestApp_JWTMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ephemeral = true
	cfg.TokenMode, cfg.TokenSecret = config.TokenModeJWT, "test-secret"

	app, out := newTestApp(t, cfg, "")
	stubInputs(t, []string{"user@example.com"}, []string{"password"})
	require.NoError(t, app.Login(context.Background()))

	out.Reset()
	require.NoError(t, app.Token(context.Background()))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	tok := lines[0]
	assert.Contains(t, out.String(), "Subject: 1\n")
	assert.Contains(t, out.String(), "Email:   user@example.com\n")
	assert.Contains(t, out.String(), "Role:    user\n")

	iss, err := auth.NewJWTIssuer([]byte("test-secret"))
	require.NoError(t, err)
	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
}

func TestClose_Idempotent(t *testing.T) {
	app, _ := newTestApp(t, testConfig(t), "")
	require.NoError(t, app.Close())
	require.NoError(t, app.Close())
}

func TestRun_PaddedPasswordIsRejected(t *testing.T) {
	origIs := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origIs })

	cfg := testConfig(t)
	cfg.Ephemeral = true

	app, out := newTestApp(t, cfg, "login\n user@example.com \n  password  \nwhoami\nexit\n")
	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Invalid email or password")
	assert.NotContains(t, s, "Welcome back")
	assert.Contains(t, s, "Not logged in")
	assert.Nil(t, app.user)
}

func TestApp_JWTModeRejectsForeignToken(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, _ := newTestApp(t, cfg, "")
	stubInputs(t, []string{"user@example.com"}, []string{"password"})
	require.NoError(t, first.Login(ctx))
	require.NoError(t, first.Close())

	cfg.TokenMode, cfg.TokenSecret = config.TokenModeJWT, "test-secret"
	second, out := newTestApp(t, cfg, "")
	require.NoError(t, second.Token(ctx))

	assert.Equal(t, "mock-jwt-token-1\nToken is not valid for the configured secret\n", out.String())
}
