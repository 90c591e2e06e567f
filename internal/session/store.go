// Package session owns the client's authentication state and mirrors it
// to persistent storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/navigation"
	"github.com/mcoot/hoopsclient/internal/reactive"
	"github.com/mcoot/hoopsclient/internal/storage"
	"github.com/mcoot/hoopsclient/internal/storage/memory"
)

// Authenticator calls the remote authentication endpoints.
// Bodies are returned raw; the store normalizes them.
type Authenticator interface {
	Login(ctx context.Context, req model.LoginRequest) (json.RawMessage, error)
	Register(ctx context.Context, req model.RegisterRequest) (json.RawMessage, error)
}

// Config holds the store's collaborators
type Config struct {
	Storage   storage.Storage
	Auth      Authenticator
	Navigator navigation.Navigator
	Logger    *slog.Logger
}

// Store holds the session state and keeps the persisted record in step with it.
// Every mutation writes storage first and only then updates the in-memory state.
type Store struct {
	storage   storage.Storage
	auth      Authenticator
	navigator navigation.Navigator
	logger    *slog.Logger

	// mu serializes mutations so storage and state change together
	mu    sync.Mutex
	state *reactive.Writable[State]
}

// New creates a store in the loading state. Call Load to read persisted state.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := cfg.Storage
	if store == nil {
		store = memory.New()
	}
	nav := cfg.Navigator
	if nav == nil {
		nav = navigation.NewLogger(logger)
	}

	return &Store{
		storage:   store,
		auth:      cfg.Auth,
		navigator: nav,
		logger:    logger.With(slog.String("component", "session")),
		state:     reactive.NewWritable(loadingState()),
	}
}

// Open creates a store and loads persisted state
func Open(ctx context.Context, cfg Config) (*Store, error) {
	s := New(cfg)
	if err := s.Load(ctx); err != nil {
		return s, err
	}
	return s, nil
}

// Load resolves the loading state from the persisted record. The store always
// leaves the loading state, even when an error is returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.storage.Get(ctx, storage.KeyToken)
	if errors.Is(err, model.ErrKeyNotFound) {
		s.state.Set(anonymousState())
		return nil
	}
	if err != nil {
		s.state.Set(anonymousState())
		return fmt.Errorf("failed to read token: %w", err)
	}

	rawUser, err := s.storage.Get(ctx, storage.KeyUser)
	if errors.Is(err, model.ErrKeyNotFound) {
		s.state.Set(anonymousState())
		return nil
	}
	if err != nil {
		s.state.Set(anonymousState())
		return fmt.Errorf("failed to read user: %w", err)
	}

	var user model.UserIdentity
	if token == "" || json.Unmarshal([]byte(rawUser), &user) != nil {
		s.logger.WarnContext(ctx, "discarding corrupt persisted session")
		s.state.Set(anonymousState())
		if err := s.clearPersisted(ctx); err != nil {
			return fmt.Errorf("%w: %w", model.ErrCorruptPersistedRecord, err)
		}
		return nil
	}

	s.state.Set(authenticatedState(user, token))
	s.logger.DebugContext(ctx, "session restored", slog.String("user_id", user.ID))
	return nil
}

// Get returns the current state
func (s *Store) Get() State {
	return s.state.Get()
}

// Subscribe calls fn with the current state and again after every change
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// Token returns the bearer token, or "" when anonymous
func (s *Store) Token() string {
	return s.state.Get().Token
}

// CheckAuth reports whether a token is present
func (s *Store) CheckAuth() bool {
	return s.Token() != ""
}

// Login authenticates and, on success, persists the session and navigates to
// the dashboard. On any failure the state is left as it was.
func (s *Store) Login(ctx context.Context, email, password string, rememberMe bool) error {
	if s.auth == nil {
		return errors.New("session has no authenticator")
	}

	raw, err := s.auth.Login(ctx, model.LoginRequest{Email: email, Password: password, RememberMe: rememberMe})
	if err != nil {
		s.logger.InfoContext(ctx, "login failed", slog.Any("error", err))
		return err
	}

	payload, err := model.ParseAuthResponse(raw)
	if err != nil {
		return err
	}
	if payload.Token == "" {
		return model.ErrMissingToken
	}
	if payload.User == nil {
		return model.ErrMissingUser
	}

	if err := s.establish(ctx, *payload.User, payload.Token); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "logged in", slog.String("user_id", payload.User.ID))
	s.navigator.Navigate(ctx, navigation.RouteDashboard)
	return nil
}

// Register creates an account. A response carrying a token logs the user in;
// otherwise the state is left as it was and the user is sent to the login view.
func (s *Store) Register(ctx context.Context, req model.RegisterRequest) error {
	if s.auth == nil {
		return errors.New("session has no authenticator")
	}

	raw, err := s.auth.Register(ctx, req)
	if err != nil {
		s.logger.InfoContext(ctx, "registration failed", slog.Any("error", err))
		return err
	}

	payload, err := model.ParseAuthResponse(raw)
	if err != nil {
		return err
	}

	if payload.Token == "" {
		s.logger.InfoContext(ctx, "registered without token")
		s.navigator.Navigate(ctx, navigation.RouteLogin)
		return nil
	}
	if payload.User == nil {
		return model.ErrMissingUser
	}

	if err := s.establish(ctx, *payload.User, payload.Token); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "registered and logged in", slog.String("user_id", payload.User.ID))
	s.navigator.Navigate(ctx, navigation.RouteDashboard)
	return nil
}

// Logout clears the session and navigates to the root. The in-memory state is
// always cleared; storage failures are returned afterwards.
func (s *Store) Logout(ctx context.Context) error {
	err := s.clear(ctx)
	s.logger.InfoContext(ctx, "logged out")
	s.navigator.Navigate(ctx, navigation.RouteRoot)
	return err
}

// HandleUnauthorized clears the session after the API rejected the token and
// sends the user to the login view
func (s *Store) HandleUnauthorized(ctx context.Context) {
	if err := s.clear(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear persisted session", slog.Any("error", err))
	}
	s.navigator.Navigate(ctx, navigation.RouteLogin)
}

// UpdateUser merges patch into the current user and persists the result.
// It does nothing when no user is set.
func (s *Store) UpdateUser(ctx context.Context, patch model.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Get()
	if current.User == nil {
		return nil
	}

	merged := patch.Apply(*current.User)
	encoded, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyUser, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	s.state.Update(func(st State) State {
		st.User = &merged
		return st
	})
	return nil
}

// establish persists token and user, then switches to the authenticated state
func (s *Store) establish(ctx context.Context, user model.UserIdentity, token string) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, err := s.readPersisted(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if err := s.storage.Set(ctx, storage.KeyToken, token); err != nil {
		return errors.Join(fmt.Errorf("failed to persist token: %w", err), s.restorePersisted(ctx, previous))
	}
	if err := s.storage.Set(ctx, storage.KeyUser, string(encoded)); err != nil {
		// Put back whichever session was stored before
		return errors.Join(fmt.Errorf("failed to persist user: %w", err), s.restorePersisted(ctx, previous))
	}

	s.state.Set(authenticatedState(user, token))
	return nil
}

// clear removes the persisted record and resets to the anonymous state
func (s *Store) clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.clearPersisted(ctx)
	s.state.Set(anonymousState())
	return err
}

// persistedRecord holds the raw stored values by key; nil marks an absent key
type persistedRecord map[string]*string

func (s *Store) readPersisted(ctx context.Context) (persistedRecord, error) {
	rec := persistedRecord{}
	for _, key := range []string{storage.KeyToken, storage.KeyUser} {
		v, err := s.storage.Get(ctx, key)
		switch {
		case errors.Is(err, model.ErrKeyNotFound):
			rec[key] = nil
		case err != nil:
			return nil, err
		default:
			rec[key] = &v
		}
	}
	return rec, nil
}

func (s *Store) restorePersisted(ctx context.Context, rec persistedRecord) error {
	var errs []error
	for _, key := range []string{storage.KeyToken, storage.KeyUser} {
		if v := rec[key]; v != nil {
			errs = append(errs, s.storage.Set(ctx, key, *v))
		} else {
			errs = append(errs, s.storage.Delete(ctx, key))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

func (s *Store) clearPersisted(ctx context.Context) error {
	return errors.Join(
		s.storage.Delete(ctx, storage.KeyToken),
		s.storage.Delete(ctx, storage.KeyUser),
	)
}
