// Package properties serves property listings and the owner dashboard.
package properties

import (
	"errors"
	"net/http"

	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/modulehandler"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// Module provides property views and the create-property action.
type Module struct{}

// New returns the properties module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "properties"
}

// Mount wires the property, available and owner views.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Properties == nil || deps.Leases == nil {
		return module.Mount{}, errors.New("properties module: property and lease stores are required")
	}
	h := newHandlers(modulehandler.NewBase(deps), newService(deps.Properties, deps.Leases))
	return module.Mount{
		Views: map[route.View]http.Handler{
			route.PropertyView:  http.HandlerFunc(h.handleProperty),
			route.AvailableView: http.HandlerFunc(h.handleAvailable),
			route.OwnerView:     http.HandlerFunc(h.handleOwner),
		},
		Actions: []module.Action{{
			Pattern:   http.MethodPost + " " + routepath.OwnerProperties,
			Handler:   http.HandlerFunc(h.handleCreateProperty),
			Protected: true,
		}},
	}, nil
}
