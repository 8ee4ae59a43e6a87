// Package web parses web command flags and launches the web server.
package web

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/leasedesk/leasedesk/internal/platform/cmd"
	"github.com/leasedesk/leasedesk/internal/platform/timeouts"
	"github.com/leasedesk/leasedesk/internal/services/web"
	"github.com/leasedesk/leasedesk/internal/services/web/auth"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/requestmeta"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	"github.com/leasedesk/leasedesk/internal/services/web/storage/redisstore"
	"github.com/leasedesk/leasedesk/internal/services/web/storage/sqlite"
)

// Session backends.
const (
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
)

const generatedKeyBytes = 32

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"LEASEDESK_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"LEASEDESK_WEB_DB_PATH" envDefault:"data/leasedesk.db"`
	SessionBackend      string        `env:"LEASEDESK_WEB_SESSION_BACKEND" envDefault:"sqlite"`
	RedisAddr           string        `env:"LEASEDESK_WEB_REDIS_ADDR" envDefault:"localhost:6379"`
	SessionKey          string        `env:"LEASEDESK_WEB_SESSION_KEY"`
	SessionTTL          time.Duration `env:"LEASEDESK_WEB_SESSION_TTL" envDefault:"24h"`
	RoutePolicy         string        `env:"LEASEDESK_WEB_ROUTE_POLICY"`
	TrustForwardedProto bool          `env:"LEASEDESK_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The web SQLite database path")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session record backend: sqlite or redis")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis session backend")
	fs.StringVar(&cfg.RoutePolicy, "route-policy", cfg.RoutePolicy, "Path to a TOML route access policy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	switch cfg.SessionBackend {
	case SessionBackendSQLite, SessionBackendRedis:
	default:
		return Config{}, fmt.Errorf("session backend must be %q or %q, got %q", SessionBackendSQLite, SessionBackendRedis, cfg.SessionBackend)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	routes, err := loadRoutes(cfg.RoutePolicy)
	if err != nil {
		return err
	}
	if protected := routes.Protected(); len(protected) > 0 {
		log.Printf("route policy protects %v", protected)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open web store: %w", err)
	}
	defer store.Close()
	if removed, err := store.DeleteExpiredSessions(ctx); err != nil {
		log.Printf("prune expired sessions: %v", err)
	} else if removed > 0 {
		log.Printf("pruned %d expired sessions", removed)
	}

	sessions, closeSessions, err := openSessions(ctx, cfg, store)
	if err != nil {
		return err
	}
	defer closeSessions()

	key, err := signingKey(cfg.SessionKey)
	if err != nil {
		return err
	}
	accounts, err := auth.NewService(store, sessions, auth.Config{SigningKey: key, TTL: cfg.SessionTTL})
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:     cfg.HTTPAddr,
		Routes:       routes,
		Store:        store,
		Auth:         accounts,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	log.Printf("web listening on %s", server.Addr())
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func loadRoutes(policyPath string) (route.Table, error) {
	policy, err := route.LoadPolicyFile(policyPath)
	if err != nil {
		return route.Table{}, err
	}
	routes, err := route.Default().WithAccess(policy)
	if err != nil {
		return route.Table{}, fmt.Errorf("apply route policy: %w", err)
	}
	return routes, nil
}

// openSessions returns the session store selected by cfg and a func that
// releases it.
func openSessions(ctx context.Context, cfg Config, store *sqlite.Store) (storage.SessionStore, func(), error) {
	if cfg.SessionBackend != SessionBackendRedis {
		return store, func() {}, nil
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeouts.StoreDial)
	defer cancel()
	client, err := redisstore.Dial(dialCtx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("open redis sessions: %w", err)
	}
	return redisstore.NewSessionStore(client, redisstore.DefaultPrefix), func() { _ = client.Close() }, nil
}

// signingKey returns the configured key, or a random per-process key that
// invalidates every session on restart.
func signingKey(configured string) ([]byte, error) {
	if key := strings.TrimSpace(configured); key != "" {
		return []byte(key), nil
	}
	key := make([]byte, generatedKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	log.Printf("LEASEDESK_WEB_SESSION_KEY is empty; sessions will not survive a restart")
	return key, nil
}
