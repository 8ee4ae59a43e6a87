// Package pages serves the static landing and about pages.
package pages

import (
	"net/http"

	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/modulehandler"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	webtemplates "github.com/leasedesk/leasedesk/internal/services/web/templates"
)

// Module provides the home and about views.
type Module struct{}

// New returns the pages module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "pages"
}

// Mount wires the home and about views.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{Base: modulehandler.NewBase(deps)}
	return module.Mount{
		Views: map[route.View]http.Handler{
			route.HomeView:    http.HandlerFunc(h.handleHome),
			route.AboutUsView: http.HandlerFunc(h.handleAbout),
		},
	}, nil
}

type handlers struct {
	modulehandler.Base
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	data := webtemplates.HomeData{}
	if viewer := h.Viewer(r); viewer.SignedIn() {
		data.Username = viewer.Username
		data.DashboardHref = h.DashboardPath(viewer.Role)
	}
	h.WritePage(w, r, "title.home", http.StatusOK, webtemplates.HomePage(data))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, "title.about", http.StatusOK, webtemplates.AboutPage())
}
