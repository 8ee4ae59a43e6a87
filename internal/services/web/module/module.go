// Package module defines the feature contract used by web composition.
//
// A module contributes view handlers, keyed by the route.View they render,
// and form actions, keyed by a method-qualified ServeMux pattern. Views are
// reached only through the navigator, which resolves the route table and runs
// the navigation guard first; actions are mounted directly.
package module

import (
	"context"
	"net/http"

	"github.com/leasedesk/leasedesk/internal/services/web/auth"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/requestmeta"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
)

// Viewer is the signed-in account, if any, behind a request.
type Viewer struct {
	UserID   string
	Username string
	Role     storage.Role
}

// SignedIn reports whether the request carries a valid session.
func (v Viewer) SignedIn() bool {
	return v.UserID != ""
}

// Is reports whether the viewer is signed in with role.
func (v Viewer) Is(role storage.Role) bool {
	return v.SignedIn() && v.Role == role
}

// ResolveViewer resolves the viewer for a request.
type ResolveViewer func(*http.Request) Viewer

// AccountService is the account surface used by the account module.
type AccountService interface {
	Register(ctx context.Context, username, password, confirm string, role storage.Role) (storage.User, error)
	Login(ctx context.Context, username, password string) (auth.Grant, error)
	Logout(ctx context.Context, token string) error
}

// Dependencies carries the collaborators modules mount against.
type Dependencies struct {
	Routes        route.Table
	Accounts      AccountService
	Users         storage.UserStore
	Properties    storage.PropertyStore
	Leases        storage.LeaseStore
	ResolveViewer ResolveViewer
	SchemePolicy  requestmeta.SchemePolicy
}

// Viewer resolves the request viewer, tolerating a missing resolver.
func (d Dependencies) Viewer(r *http.Request) Viewer {
	if d.ResolveViewer == nil || r == nil {
		return Viewer{}
	}
	return d.ResolveViewer(r)
}

// Action is a form endpoint mounted outside the navigator.
type Action struct {
	// Pattern is a ServeMux pattern with a method, e.g. "POST /login".
	Pattern string
	Handler http.Handler
	// Protected actions redirect to the login route when no viewer is
	// signed in.
	Protected bool
}

// Mount is what a module contributes to the root handler.
type Mount struct {
	Views   map[route.View]http.Handler
	Actions []Action
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
