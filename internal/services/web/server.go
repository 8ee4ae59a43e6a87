// Package web hosts the browser-facing leasedesk service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/leasedesk/leasedesk/internal/platform/timeouts"
	"github.com/leasedesk/leasedesk/internal/services/web/app"
	"github.com/leasedesk/leasedesk/internal/services/web/auth"
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/modules"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/httpx"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/observability"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/requestmeta"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
	webstatic "github.com/leasedesk/leasedesk/internal/services/web/static"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Authenticator is the account service behind the session cookie.
type Authenticator interface {
	module.AccountService
	Resolve(ctx context.Context, token string) (auth.Principal, bool)
}

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Routes defaults to route.Default().
	Routes       route.Table
	Store        storage.Store
	Auth         Authenticator
	SchemePolicy requestmeta.SchemePolicy
	// Logger defaults to log.Default().
	Logger         *log.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type healthResponse struct {
	Status string `json:"status"`
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Auth == nil {
		return nil, errors.New("authenticator is required")
	}
	if cfg.Routes.Len() == 0 {
		cfg.Routes = route.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	principal := newPrincipalResolver(cfg.Auth)
	deps := module.Dependencies{
		Routes:        cfg.Routes,
		Accounts:      cfg.Auth,
		Users:         cfg.Store,
		Properties:    cfg.Store,
		Leases:        cfg.Store,
		ResolveViewer: principal.resolveViewer,
		SchemePolicy:  cfg.SchemePolicy,
	}
	h, err := app.Compose(app.ComposeInput{
		Dependencies:   deps,
		Modules:        modules.Default(),
		Session:        principal.resolveSession,
		TracerProvider: cfg.TracerProvider,
		MeterProvider:  cfg.MeterProvider,
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withRequestPrincipalState(),
		observability.RequestLogger(cfg.Logger),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
