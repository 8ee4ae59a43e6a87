// Package leases serves the manager and tenant lease dashboards.
package leases

import (
	"errors"
	"net/http"

	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/modulehandler"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// Module provides lease views and the manager lease actions.
type Module struct{}

// New returns the leases module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "leases"
}

// Mount wires the manager and tenant views and the lease actions.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Users == nil || deps.Properties == nil || deps.Leases == nil {
		return module.Mount{}, errors.New("leases module: user, property and lease stores are required")
	}
	h := newHandlers(modulehandler.NewBase(deps), newService(deps.Users, deps.Properties, deps.Leases))
	return module.Mount{
		Views: map[route.View]http.Handler{
			route.ManagerView: http.HandlerFunc(h.handleManager),
			route.TenantView:  http.HandlerFunc(h.handleTenant),
		},
		Actions: []module.Action{
			{
				Pattern:   http.MethodPost + " " + routepath.ManagerLeases,
				Handler:   http.HandlerFunc(h.handleCreateLease),
				Protected: true,
			},
			{
				Pattern:   http.MethodPost + " " + routepath.ManagerLeaseStatusPattern,
				Handler:   http.HandlerFunc(h.handleUpdateStatus),
				Protected: true,
			},
		},
	}, nil
}
