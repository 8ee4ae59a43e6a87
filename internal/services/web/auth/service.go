// Package auth registers accounts, signs session tokens and resolves tokens
// back to signed-in principals.
//
// A token is an HS256 JWT naming the user (sub) and a server-side session
// record (sid). Resolving a token checks the signature and expiry and then
// requires the session record to still exist, so logging out revokes a token
// before it expires.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leasedesk/leasedesk/internal/platform/id"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultIssuer is the iss claim written into session tokens.
	DefaultIssuer = "leasedesk"
	// DefaultTTL is the session lifetime when Config.TTL is unset.
	DefaultTTL = 24 * time.Hour

	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)

var (
	ErrInvalidCredentials = apperrors.EK(apperrors.KindUnauthorized, "auth.error.invalid_credentials", "invalid username or password")
	ErrUsernameInvalid    = apperrors.EK(apperrors.KindInvalidInput, "auth.error.username_invalid", "username must be 3-64 characters without spaces")
	ErrPasswordTooShort   = apperrors.EK(apperrors.KindInvalidInput, "auth.error.password_too_short", "password must be at least 8 characters")
	ErrPasswordTooLong    = apperrors.EK(apperrors.KindInvalidInput, "auth.error.password_too_long", "password must be at most 72 bytes")
	ErrPasswordMismatch   = apperrors.EK(apperrors.KindInvalidInput, "auth.error.password_mismatch", "passwords do not match")
	ErrRoleInvalid        = apperrors.EK(apperrors.KindInvalidInput, "auth.error.role_invalid", "role must be owner, manager or tenant")
	ErrUsernameTaken      = apperrors.EK(apperrors.KindConflict, "auth.error.username_taken", "username is already registered")
)

// Principal is a signed-in account bound to a session.
type Principal struct {
	UserID    string
	Username  string
	Role      storage.Role
	SessionID string
}

// Grant is the result of a successful login.
type Grant struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}

// Config configures token signing and session lifetime.
type Config struct {
	SigningKey []byte
	TTL        time.Duration
	Issuer     string
	BcryptCost int
	Now        func() time.Time
}

// Service implements account registration and session tokens.
type Service struct {
	users     storage.UserStore
	sessions  storage.SessionStore
	key       []byte
	ttl       time.Duration
	issuer    string
	cost      int
	now       func() time.Time
	dummyHash []byte
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewService validates cfg and builds a Service.
func NewService(users storage.UserStore, sessions storage.SessionStore, cfg Config) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("signing key is required")
	}
	if cfg.TTL < 0 {
		return nil, errors.New("session ttl must not be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	cfg.Issuer = strings.TrimSpace(cfg.Issuer)
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", cfg.BcryptCost)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("leasedesk-dummy-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{
		users:     users,
		sessions:  sessions,
		key:       append([]byte(nil), cfg.SigningKey...),
		ttl:       cfg.TTL,
		issuer:    cfg.Issuer,
		cost:      cfg.BcryptCost,
		now:       cfg.Now,
		dummyHash: dummyHash,
	}, nil
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password, confirm string, role storage.Role) (storage.User, error) {
	username = strings.TrimSpace(username)
	if !validUsername(username) {
		return storage.User{}, ErrUsernameInvalid
	}
	if len(password) < minPasswordLength {
		return storage.User{}, ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return storage.User{}, ErrPasswordTooLong
	}
	if password != confirm {
		return storage.User{}, ErrPasswordMismatch
	}
	if !role.Valid() {
		return storage.User{}, ErrRoleInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return storage.User{}, fmt.Errorf("hash password: %w", err)
	}
	userID, err := id.NewPrefixed("usr")
	if err != nil {
		return storage.User{}, err
	}
	u := storage.User{
		ID:           userID,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return storage.User{}, ErrUsernameTaken
		}
		return storage.User{}, fmt.Errorf("register user: %w", err)
	}
	return u, nil
}

// Login verifies credentials, opens a session and signs a token for it.
func (s *Service) Login(ctx context.Context, username, password string) (Grant, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Grant{}, ErrInvalidCredentials
	}
	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Spend the same bcrypt time as a real comparison.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return Grant{}, ErrInvalidCredentials
		}
		return Grant{}, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return Grant{}, ErrInvalidCredentials
	}

	sessionID, err := id.NewPrefixed("ses")
	if err != nil {
		return Grant{}, err
	}
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl).Truncate(time.Second)
	if err := s.sessions.PutSession(ctx, storage.Session{
		ID:        sessionID,
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return Grant{}, fmt.Errorf("open session: %w", err)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString(s.key)
	if err != nil {
		_ = s.sessions.DeleteSession(ctx, sessionID)
		return Grant{}, fmt.Errorf("sign session token: %w", err)
	}
	return Grant{
		Token:     token,
		ExpiresAt: expiresAt,
		Principal: Principal{UserID: u.ID, Username: u.Username, Role: u.Role, SessionID: sessionID},
	}, nil
}

// Logout revokes the session named by token. Tokens that do not verify, or
// whose session is already gone, are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Resolve returns the principal for a valid, unrevoked token.
func (s *Service) Resolve(ctx context.Context, token string) (Principal, bool) {
	claims, err := s.parse(token,
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Principal{}, false
	}
	session, err := s.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("resolve session %s: %v", claims.SessionID, err)
		}
		return Principal{}, false
	}
	if session.UserID != claims.Subject {
		return Principal{}, false
	}
	u, err := s.users.GetUser(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("resolve session user %s: %v", session.UserID, err)
		}
		return Principal{}, false
	}
	return Principal{UserID: u.ID, Username: u.Username, Role: u.Role, SessionID: session.ID}, true
}

func (s *Service) parse(token string, opts ...jwt.ParserOption) (*sessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("token is required")
	}
	opts = append([]jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}, opts...)
	claims := &sessionClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, opts...); err != nil {
		return nil, err
	}
	if strings.TrimSpace(claims.SessionID) == "" || strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.New("token is missing session claims")
	}
	return claims, nil
}

func validUsername(username string) bool {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return false
	}
	for _, r := range username {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
