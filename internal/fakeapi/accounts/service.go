package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/hoopsclient/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrAccountNotFound    = errors.New("account not found")
)

// Account is a registered user of the fake API
type Account struct {
	ID           string
	Username     string
	Email        string
	TeamName     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Claims are the JWT claims carried by issued tokens
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Config holds configuration for the account service
type Config struct {
	// Secret signs issued tokens (HS256)
	Secret []byte
	// TokenTTL is how long an issued token stays valid
	TokenTTL time.Duration
	// RememberMeTTL replaces TokenTTL when the client asks to be remembered
	RememberMeTTL time.Duration
	// BcryptCost is the password hashing cost; zero uses bcrypt.DefaultCost
	BcryptCost int
}

// DefaultConfig returns default account configuration
func DefaultConfig() Config {
	return Config{
		Secret:        []byte("dev-secret-change-me"),
		TokenTTL:      24 * time.Hour,
		RememberMeTTL: 30 * 24 * time.Hour,
		BcryptCost:    bcrypt.DefaultCost,
	}
}

// Service handles account registration, login and token validation
type Service struct {
	clock clock.Clock
	cfg   Config

	mu      sync.RWMutex
	byID    map[string]*Account
	byEmail map[string]*Account
	byName  map[string]*Account
}

// New creates a new account service
func New(clk clock.Clock, cfg Config) *Service {
	def := DefaultConfig()
	if len(cfg.Secret) == 0 {
		cfg.Secret = def.Secret
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = def.TokenTTL
	}
	if cfg.RememberMeTTL == 0 {
		cfg.RememberMeTTL = def.RememberMeTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = def.BcryptCost
	}
	return &Service{
		clock:   clk,
		cfg:     cfg,
		byID:    make(map[string]*Account),
		byEmail: make(map[string]*Account),
		byName:  make(map[string]*Account),
	}
}

// Register creates an account
func (s *Service) Register(ctx context.Context, username, email, password, teamName string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        normalizeEmail(email),
		TeamName:     teamName,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[account.Email]; ok {
		return nil, ErrEmailExists
	}
	if _, ok := s.byName[strings.ToLower(username)]; ok {
		return nil, ErrUsernameExists
	}

	s.byID[account.ID] = account
	s.byEmail[account.Email] = account
	s.byName[strings.ToLower(username)] = account

	return account.clone(), nil
}

// Login checks credentials and returns the account
func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	s.mu.RLock()
	account, ok := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account.clone(), nil
}

// Get returns the account with the given ID
func (s *Service) Get(id string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account.clone(), nil
}

// IssueToken signs a token for account. rememberMe selects the longer lifetime.
func (s *Service) IssueToken(account *Account, rememberMe bool) (string, error) {
	ttl := s.cfg.TokenTTL
	if rememberMe {
		ttl = s.cfg.RememberMeTTL
	}
	now := s.clock.Now()

	claims := Claims{
		Username: account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken verifies token and returns the account it was issued to
func (s *Service) ValidateToken(token string) (*Account, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	account, err := s.Get(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return account, nil
}

// Update changes the profile fields of an account. Empty values are ignored.
func (s *Service) Update(id, username, teamName string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}

	if username != "" && !strings.EqualFold(username, account.Username) {
		if _, taken := s.byName[strings.ToLower(username)]; taken {
			return nil, ErrUsernameExists
		}
		delete(s.byName, strings.ToLower(account.Username))
		account.Username = username
		s.byName[strings.ToLower(username)] = account
	}
	if teamName != "" {
		account.TeamName = teamName
	}
	return account.clone(), nil
}

// clone returns a copy safe to hand out without holding the lock
func (a *Account) clone() *Account {
	c := *a
	return &c
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
