// Package services contains application services for the Appointo client.
// This file defines the session service: mocked login and registration,
// logout, and reads of the session persisted in local storage.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/appointo/internal/client/auth"
	"github.com/dmitrijs2005/appointo/internal/client/models"
	"github.com/dmitrijs2005/appointo/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/appointo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/appointo/internal/cryptox"
	"github.com/dmitrijs2005/appointo/internal/logging"
)

// Storage keys of the persisted session.
const (
	TokenKey   = "appointo_token"
	AccountKey = "appointo_user"
)

// DefaultLoginDelay is the simulated round trip of Login and Register.
const DefaultLoginDelay = 500 * time.Millisecond

// SessionService is the single source of truth for who is logged in.
//
// Contract:
//   - Login: after the simulated delay, authenticate against the account
//     set and persist the new session, replacing any previous one.
//   - Register: after the simulated delay, create a standard account and
//     persist a session for it.
//   - Logout: remove the persisted session; never waits, idempotent.
//   - Reset: like Logout, but wipes every locally stored key and returns
//     the removed keys in order.
//   - CurrentUser / IsAuthenticated / Token: read the persisted session.
//
// Failed calls never modify storage. The delay is not cancellable; ctx is
// handed to storage only.
type SessionService interface {
	Login(ctx context.Context, in models.LoginInput) (*models.Session, error)
	Register(ctx context.Context, in models.RegisterInput) (*models.Session, error)
	Logout(ctx context.Context) error
	Reset(ctx context.Context) ([]string, error)
	CurrentUser(ctx context.Context) (*models.Account, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
}

// sessionService orders mutations with a generation counter: every Login,
// Register (with matching passwords), Logout and Reset takes the next
// generation when it starts, and a Login/Register that finds a newer
// generation once its delay has elapsed gives up with ErrSuperseded. The most recently issued mutation therefore
// decides the persisted state. mu also serializes commits.
type sessionService struct {
	accounts accounts.Repository
	store    metadata.Repository
	clock    clockwork.Clock
	delay    time.Duration
	issuer   auth.TokenIssuer
	verifier cryptox.PasswordVerifier
	log      logging.Logger

	mu  sync.Mutex
	gen uint64
}

// Option configures a SessionService built by NewSessionService.
type Option func(*sessionService)

// WithClock sets the clock the simulated latency waits on.
func WithClock(c clockwork.Clock) Option {
	return func(s *sessionService) { s.clock = c }
}

// WithDelay sets the simulated latency; zero or negative disables it.
func WithDelay(d time.Duration) Option {
	return func(s *sessionService) { s.delay = d }
}

// WithTokenIssuer sets how session tokens are minted; the default is
// auth.MockIssuer.
func WithTokenIssuer(i auth.TokenIssuer) Option {
	return func(s *sessionService) { s.issuer = i }
}

// WithPasswordVerifier sets the credential check used by Login; the default
// is cryptox.SentinelVerifier.
func WithPasswordVerifier(v cryptox.PasswordVerifier) Option {
	return func(s *sessionService) { s.verifier = v }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *sessionService) { s.log = l }
}

// NewSessionService constructs a SessionService over the given account set
// and durable store. Defaults: real clock, DefaultLoginDelay, mock tokens,
// sentinel password check, discarded logs.
func NewSessionService(accs accounts.Repository, store metadata.Repository, opts ...Option) SessionService {
	s := &sessionService{
		accounts: accs,
		store:    store,
		clock:    clockwork.NewRealClock(),
		delay:    DefaultLoginDelay,
		issuer:   auth.MockIssuer{},
		verifier: cryptox.SentinelVerifier{},
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "session")
	return s
}

func (s *sessionService) Login(ctx context.Context, in models.LoginInput) (*models.Session, error) {
	ticket := s.begin()
	s.simulateLatency()

	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			s.log.Info(ctx, "login rejected", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !s.verifier.Verify(in.Password) {
		s.log.Info(ctx, "login rejected", "reason", "wrong password", "account_id", account.ID)
		return nil, ErrInvalidCredentials
	}

	session, err := s.commit(ctx, ticket, func() (models.Account, error) { return account, nil })
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "logged in", "account_id", account.ID)
	return session, nil
}

func (s *sessionService) Register(ctx context.Context, in models.RegisterInput) (*models.Session, error) {
	// A mismatch takes no generation, so it never supersedes a pending call.
	if in.Password != in.ConfirmPassword {
		s.simulateLatency()
		s.log.Info(ctx, "registration rejected", "reason", "password mismatch")
		return nil, ErrPasswordMismatch
	}

	ticket := s.begin()
	s.simulateLatency()

	session, err := s.commit(ctx, ticket, func() (models.Account, error) {
		return s.accounts.Create(ctx, in.Name, in.Email)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "registered", "account_id", session.Account.ID)
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if err := s.store.DeleteMany(ctx, TokenKey, AccountKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionService) Reset(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	data, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local data: %w", err)
	}
	if err := s.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear local data: %w", err)
	}

	keys := slices.Sorted(maps.Keys(data))
	s.log.Info(ctx, "local data cleared", "keys", len(keys))
	return keys, nil
}

func (s *sessionService) CurrentUser(ctx context.Context) (*models.Account, error) {
	raw, err := s.store.Get(ctx, AccountKey)
	if err != nil {
		return nil, fmt.Errorf("read session account: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	account, err := decodeAccount(raw)
	if err != nil {
		s.log.Warn(ctx, "treating persisted session as absent", "error", err)
		return nil, nil
	}
	return account, nil
}

func (s *sessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (s *sessionService) Token(ctx context.Context) (string, error) {
	raw, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return string(raw), nil
}

// begin hands out the generation a mutation must still own at commit time.
func (s *sessionService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

func (s *sessionService) simulateLatency() {
	if s.delay <= 0 {
		return
	}
	<-s.clock.After(s.delay)
}

// commit resolves the account, mints a token and persists both, provided
// no newer mutation has started since ticket was taken.
func (s *sessionService) commit(ctx context.Context, ticket uint64, resolve func() (models.Account, error)) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.gen {
		s.log.Debug(ctx, "discarding superseded session change", "ticket", ticket, "current", s.gen)
		return nil, ErrSuperseded
	}

	account, err := resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}

	token, err := s.issuer.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	data, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("encode account: %w", err)
	}

	if err := s.store.SetMany(ctx, map[string][]byte{
		TokenKey:   []byte(token),
		AccountKey: data,
	}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &models.Session{Token: token, Account: account}, nil
}

func decodeAccount(raw []byte) (*models.Account, error) {
	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSessionState, err)
	}
	if account.ID == "" || !account.Role.Valid() {
		return nil, fmt.Errorf("%w: missing id or unknown role", ErrMalformedSessionState)
	}
	return &account, nil
}
