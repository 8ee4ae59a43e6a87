// Package app composes feature modules into the root page handler.
//
// Page views are reached through a single navigator that matches the route
// table, asks the navigation guard for a decision and only then dispatches
// to the module view. Form actions are mounted beside it on the same mux.
package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/leasedesk/leasedesk/internal/services/web/guard"
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ComposeInput carries modules and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// Session resolves the guard session for a request. A nil Session
	// treats every request as signed out.
	Session        func(*http.Request) guard.Session
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Compose builds the root HTTP handler from modules.
func Compose(input ComposeInput) (http.Handler, error) {
	table := input.Dependencies.Routes
	if table.Len() == 0 {
		return nil, errors.New("route table is empty")
	}
	loginPath, err := table.URL(route.Login, nil)
	if err != nil {
		return nil, fmt.Errorf("route table must declare the login route: %w", err)
	}
	if input.Session == nil {
		input.Session = func(*http.Request) guard.Session { return guard.Session{} }
	}

	views := make(map[route.View]http.Handler)
	viewOwners := make(map[route.View]string)
	var actions []ownedAction
	actionOwners := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, errors.New("module is nil")
		}
		mount, err := feature.Mount(input.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		for view, handler := range mount.Views {
			if handler == nil {
				return nil, fmt.Errorf("module %q: view %q handler is required", feature.ID(), view)
			}
			if previous, ok := viewOwners[view]; ok {
				return nil, fmt.Errorf("module %q duplicates view %q owned by module %q", feature.ID(), view, previous)
			}
			viewOwners[view] = feature.ID()
			views[view] = handler
		}
		for _, action := range mount.Actions {
			pattern := strings.TrimSpace(action.Pattern)
			if err := validateActionPattern(pattern); err != nil {
				return nil, fmt.Errorf("module %q has invalid action pattern %q: %w", feature.ID(), action.Pattern, err)
			}
			if action.Handler == nil {
				return nil, fmt.Errorf("module %q: action %q handler is required", feature.ID(), pattern)
			}
			if previous, ok := actionOwners[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates action %q owned by module %q", feature.ID(), pattern, previous)
			}
			actionOwners[pattern] = feature.ID()
			action.Pattern = pattern
			actions = append(actions, ownedAction{owner: feature.ID(), Action: action})
		}
	}
	if err := checkViewCoverage(table, views); err != nil {
		return nil, err
	}

	nav, err := newNavigator(navigatorConfig{
		deps:           input.Dependencies,
		views:          views,
		session:        input.Session,
		tracerProvider: input.TracerProvider,
		meterProvider:  input.MeterProvider,
	})
	if err != nil {
		return nil, err
	}

	root := http.NewServeMux()
	if err := handle(root, "GET /", nav); err != nil {
		return nil, err
	}
	authenticated := func(r *http.Request) bool { return input.Session(r).Authenticated() }
	for _, action := range actions {
		handler := requireCookieSessionSameOrigin(input.Dependencies.SchemePolicy)(action.Handler)
		if action.Protected {
			handler = requireAuth(authenticated, loginPath)(handler)
		}
		if err := handle(root, action.Pattern, handler); err != nil {
			return nil, fmt.Errorf("module %q: %w", action.owner, err)
		}
	}
	return root, nil
}

type ownedAction struct {
	module.Action
	owner string
}

// checkViewCoverage requires a handler for every view the table renders and
// rejects handlers for views no route renders.
func checkViewCoverage(table route.Table, views map[route.View]http.Handler) error {
	used := make(map[route.View]bool, table.Len())
	for _, r := range table.Routes() {
		used[r.View] = true
		if _, ok := views[r.View]; !ok {
			return fmt.Errorf("route %q renders view %q but no module provides it", r.Name, r.View)
		}
	}
	for view := range views {
		if !used[view] {
			return fmt.Errorf("view %q is provided but no route renders it", view)
		}
	}
	return nil
}

func validateActionPattern(pattern string) error {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok || method == "" {
		return errors.New("pattern must name a method")
	}
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return fmt.Errorf("method %s is not a form action method", method)
	}
	if !strings.HasPrefix(strings.TrimSpace(path), "/") {
		return errors.New("path must begin with /")
	}
	return nil
}

// handle registers pattern on mux, turning ServeMux conflict panics into
// errors.
func handle(mux *http.ServeMux, pattern string, handler http.Handler) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("register %q: %v", pattern, recovered)
		}
	}()
	mux.Handle(pattern, handler)
	return nil
}

func defaultTracerProvider(provider trace.TracerProvider) trace.TracerProvider {
	if provider == nil {
		return otel.GetTracerProvider()
	}
	return provider
}

func defaultMeterProvider(provider metric.MeterProvider) metric.MeterProvider {
	if provider == nil {
		return otel.GetMeterProvider()
	}
	return provider
}
