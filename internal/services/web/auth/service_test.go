package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	"golang.org/x/crypto/bcrypt"
)

type memStore struct {
	mu         sync.Mutex
	users      map[string]storage.User
	sessions   map[string]storage.Session
	sessionErr error
}

func newMemStore() *memStore {
	return &memStore{users: map[string]storage.User{}, sessions: map[string]storage.Session{}}
}

func (m *memStore) CreateUser(_ context.Context, u storage.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return storage.ErrAlreadyExists
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memStore) GetUser(_ context.Context, userID string) (storage.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return storage.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (storage.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return storage.User{}, storage.ErrNotFound
}

func (m *memStore) PutSession(_ context.Context, s storage.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memStore) GetSession(_ context.Context, sessionID string) (storage.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionErr != nil {
		return storage.Session{}, m.sessionErr
	}
	s, ok := m.sessions[sessionID]
	if !ok {
		return storage.Session{}, storage.ErrNotFound
	}
	return s, nil
}

func (m *memStore) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, *memStore, *clock) {
	t.Helper()
	store := newMemStore()
	clk := &clock{now: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)}
	svc, err := NewService(store, store, Config{
		SigningKey: []byte("0123456789abcdef0123456789abcdef"),
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
		Now:        clk.Now,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc, store, clk
}

func TestNewServiceValidatesConfig(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	tests := []struct {
		name     string
		users    storage.UserStore
		sessions storage.SessionStore
		cfg      Config
	}{
		{name: "missing users", sessions: store, cfg: Config{SigningKey: []byte("k")}},
		{name: "missing sessions", users: store, cfg: Config{SigningKey: []byte("k")}},
		{name: "missing key", users: store, sessions: store},
		{name: "negative ttl", users: store, sessions: store, cfg: Config{SigningKey: []byte("k"), TTL: -time.Second}},
		{name: "bad cost", users: store, sessions: store, cfg: Config{SigningKey: []byte("k"), BcryptCost: 99}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewService(tc.users, tc.sessions, tc.cfg); err == nil {
				t.Fatal("NewService() error = nil")
			}
		})
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		role     storage.Role
		want     error
	}{
		{name: "short username", username: "ab", password: "password1", confirm: "password1", role: storage.RoleTenant, want: ErrUsernameInvalid},
		{name: "username with space", username: "ana maria", password: "password1", confirm: "password1", role: storage.RoleTenant, want: ErrUsernameInvalid},
		{name: "short password", username: "ana", password: "short", confirm: "short", role: storage.RoleTenant, want: ErrPasswordTooShort},
		{name: "long password", username: "ana", password: strings.Repeat("p", 73), confirm: strings.Repeat("p", 73), role: storage.RoleTenant, want: ErrPasswordTooLong},
		{name: "mismatch", username: "ana", password: "password1", confirm: "password2", role: storage.RoleTenant, want: ErrPasswordMismatch},
		{name: "unknown role", username: "ana", password: "password1", confirm: "password1", role: "landlord", want: ErrRoleInvalid},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Register(context.Background(), tc.username, tc.password, tc.confirm, tc.role)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Register() error = %v, want %v", err, tc.want)
			}
			if apperrors.KindOf(err) != apperrors.KindInvalidInput {
				t.Fatalf("kind = %q, want %q", apperrors.KindOf(err), apperrors.KindInvalidInput)
			}
		})
	}
}

func TestRegisterHashesPasswordAndRejectsDuplicates(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, " ana ", "password1", "password1", storage.RoleOwner)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !strings.HasPrefix(u.ID, "usr-") {
		t.Fatalf("user id = %q, want usr- prefix", u.ID)
	}
	if u.Username != "ana" {
		t.Fatalf("username = %q, want %q", u.Username, "ana")
	}
	stored, err := store.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if string(stored.PasswordHash) == "password1" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("password1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	_, err = svc.Register(ctx, "ANA", "password1", "password1", storage.RoleTenant)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate Register() error = %v, want ErrUsernameTaken", err)
	}
	if got := apperrors.HTTPStatus(err); got != 409 {
		t.Fatalf("duplicate status = %d, want 409", got)
	}
}

func TestLoginIssuesTokenThatResolves(t *testing.T) {
	t.Parallel()

	svc, store, clk := newTestService(t)
	ctx := context.Background()
	u, err := svc.Register(ctx, "ana", "password1", "password1", storage.RoleManager)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	grant, err := svc.Login(ctx, "ana", "password1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if grant.Token == "" {
		t.Fatal("expected token")
	}
	if want := clk.Now().Add(time.Hour); !grant.ExpiresAt.Equal(want) {
		t.Fatalf("ExpiresAt = %v, want %v", grant.ExpiresAt, want)
	}
	if !strings.HasPrefix(grant.Principal.SessionID, "ses-") {
		t.Fatalf("session id = %q, want ses- prefix", grant.Principal.SessionID)
	}
	if _, err := store.GetSession(ctx, grant.Principal.SessionID); err != nil {
		t.Fatalf("session not stored: %v", err)
	}

	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(grant.Token, claims); err != nil {
		t.Fatalf("ParseUnverified() error = %v", err)
	}
	if claims.Subject != u.ID || claims.SessionID != grant.Principal.SessionID || claims.Issuer != DefaultIssuer {
		t.Fatalf("claims = %+v", claims)
	}

	principal, ok := svc.Resolve(ctx, grant.Token)
	if !ok {
		t.Fatal("Resolve() ok = false")
	}
	want := Principal{UserID: u.ID, Username: "ana", Role: storage.RoleManager, SessionID: grant.Principal.SessionID}
	if principal != want {
		t.Fatalf("principal = %+v, want %+v", principal, want)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "ana", "password1", "password1", storage.RoleTenant); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for _, creds := range [][2]string{{"ana", "wrong-password"}, {"bob", "password1"}, {"", ""}} {
		_, err := svc.Login(ctx, creds[0], creds[1])
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Login(%q) error = %v, want ErrInvalidCredentials", creds[0], err)
		}
	}
}

func TestResolveRejectsExpiredTamperedAndRevokedTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		svc, _, clk := newTestService(t)
		grant := registerAndLogin(t, svc)
		clk.Advance(time.Hour)
		if _, ok := svc.Resolve(ctx, grant.Token); ok {
			t.Fatal("expired token resolved")
		}
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		grant := registerAndLogin(t, svc)
		if _, ok := svc.Resolve(ctx, grant.Token+"x"); ok {
			t.Fatal("tampered token resolved")
		}
	})

	t.Run("foreign key", func(t *testing.T) {
		t.Parallel()
		svc, store, clk := newTestService(t)
		grant := registerAndLogin(t, svc)
		other, err := NewService(store, store, Config{SigningKey: []byte("another-key"), BcryptCost: bcrypt.MinCost, Now: clk.Now})
		if err != nil {
			t.Fatalf("NewService() error = %v", err)
		}
		if _, ok := other.Resolve(ctx, grant.Token); ok {
			t.Fatal("token signed with another key resolved")
		}
	})

	t.Run("revoked", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		grant := registerAndLogin(t, svc)
		if err := svc.Logout(ctx, grant.Token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
		if _, ok := svc.Resolve(ctx, grant.Token); ok {
			t.Fatal("revoked token resolved")
		}
		if err := svc.Logout(ctx, grant.Token); err != nil {
			t.Fatalf("second Logout() error = %v", err)
		}
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		t.Parallel()
		svc, _, clk := newTestService(t)
		grant := registerAndLogin(t, svc)
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
			SessionID: grant.Principal.SessionID,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   grant.Principal.UserID,
				Issuer:    DefaultIssuer,
				ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign none token: %v", err)
		}
		if _, ok := svc.Resolve(ctx, token); ok {
			t.Fatal("alg=none token resolved")
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		if _, ok := svc.Resolve(ctx, ""); ok {
			t.Fatal("empty token resolved")
		}
	})

	t.Run("session store failure", func(t *testing.T) {
		t.Parallel()
		svc, store, _ := newTestService(t)
		grant := registerAndLogin(t, svc)
		store.mu.Lock()
		store.sessionErr = errors.New("redis down")
		store.mu.Unlock()
		if _, ok := svc.Resolve(ctx, grant.Token); ok {
			t.Fatal("token resolved while session store failed")
		}
	})
}

func TestLogoutExpiredTokenStillRevokes(t *testing.T) {
	t.Parallel()

	svc, store, clk := newTestService(t)
	ctx := context.Background()
	grant := registerAndLogin(t, svc)
	clk.Advance(2 * time.Hour)

	if err := svc.Logout(ctx, grant.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := store.GetSession(ctx, grant.Principal.SessionID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("session after logout = %v, want ErrNotFound", err)
	}
	if err := svc.Logout(ctx, "garbage"); err != nil {
		t.Fatalf("Logout(garbage) error = %v", err)
	}
}

func registerAndLogin(t *testing.T, svc *Service) Grant {
	t.Helper()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "ana", "password1", "password1", storage.RoleTenant); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	grant, err := svc.Login(ctx, "ana", "password1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return grant
}
