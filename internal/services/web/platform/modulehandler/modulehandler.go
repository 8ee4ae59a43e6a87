// Package modulehandler provides a composable base for web module handlers.
//
// Every module shares the same scaffold for viewer resolution, page
// rendering, flash notices, redirects and error handling. Modules embed Base
// rather than duplicating it.
package modulehandler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	flashnotice "github.com/leasedesk/leasedesk/internal/services/web/platform/flash"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/httpx"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/pagerender"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/weberror"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	webtemplates "github.com/leasedesk/leasedesk/internal/services/web/templates"
)

// maxFormBytes bounds urlencoded form bodies.
const maxFormBytes = 64 << 10

// ErrForbidden is returned to viewers whose role may not perform an action.
var ErrForbidden = apperrors.EK(apperrors.KindForbidden, "error.forbidden.body", "viewer role is not allowed")

// Base carries module dependencies and the shared handler helpers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Dependencies returns the dependencies the base was built with.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// Viewer resolves the account behind the request.
func (b Base) Viewer(r *http.Request) module.Viewer {
	return b.deps.Viewer(r)
}

// RoutePath returns the path of a named route, falling back to fallback
// when the table does not declare it.
func (b Base) RoutePath(name route.Name, fallback string) string {
	path, err := b.deps.Routes.URL(name, nil)
	if err != nil {
		return fallback
	}
	return path
}

// DashboardPath returns the dashboard for role, or the home page for an
// unknown role.
func (b Base) DashboardPath(role storage.Role) string {
	switch role {
	case storage.RoleOwner:
		return b.RoutePath(route.Owner, routepath.Owner)
	case storage.RoleManager:
		return b.RoutePath(route.Manager, routepath.Manager)
	case storage.RoleTenant:
		return b.RoutePath(route.Tenant, routepath.Tenant)
	default:
		return b.RoutePath(route.Home, routepath.Root)
	}
}

// WritePage renders body in the application layout under the localized
// title key.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, titleKey string, statusCode int, body templ.Component) {
	b.writePage(w, r, pagerender.Page{TitleKey: titleKey, StatusCode: statusCode, Body: body})
}

// WriteTitledPage renders body under a literal title such as a record name.
func (b Base) WriteTitledPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	b.writePage(w, r, pagerender.Page{Title: title, StatusCode: statusCode, Body: body})
}

func (b Base) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	shell := pagerender.Shell{Viewer: b.Viewer(r), Policy: b.deps.SchemePolicy}
	if err := pagerender.WritePage(w, r, shell, page); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteRolePrompt renders the prompt shown when a dashboard needs role.
// Signed-in viewers with another role get 403.
func (b Base) WriteRolePrompt(w http.ResponseWriter, r *http.Request, titleKey string, role storage.Role) {
	viewer := b.Viewer(r)
	status := http.StatusOK
	if viewer.SignedIn() {
		status = http.StatusForbidden
	}
	b.WritePage(w, r, titleKey, status, webtemplates.SignInPrompt("role."+string(role), viewer.SignedIn()))
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// Flash queues a notice for the next rendered page.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.Write(w, r, b.deps.SchemePolicy, notice)
}

// Redirect sends the browser to location after a form post.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}

// RequireRole returns the viewer when it holds role. Otherwise it writes a
// 403 response and reports false.
func (b Base) RequireRole(w http.ResponseWriter, r *http.Request, role storage.Role) (module.Viewer, bool) {
	viewer := b.Viewer(r)
	if viewer.Is(role) {
		return viewer, true
	}
	b.WriteError(w, r, ErrForbidden)
	return module.Viewer{}, false
}

// ParseForm parses a bounded form body.
func ParseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("parse form: %v", err))
	}
	return nil
}

// FormValue returns the trimmed form field name.
func FormValue(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.FormValue(name))
}
