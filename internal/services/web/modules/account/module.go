// Package account serves sign-in, registration and sign-out.
package account

import (
	"errors"
	"net/http"

	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/modulehandler"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// Module provides the account views and form actions.
type Module struct{}

// New returns the account module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "account"
}

// Mount wires the login, register and logout views and their actions.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Accounts == nil {
		return module.Mount{}, errors.New("account module: accounts service is required")
	}
	h := newHandlers(modulehandler.NewBase(deps), deps.Accounts)
	return module.Mount{
		Views: map[route.View]http.Handler{
			route.LoginView:    http.HandlerFunc(h.handleLoginPage),
			route.RegisterView: http.HandlerFunc(h.handleRegisterPage),
			route.LogoutView:   http.HandlerFunc(h.handleLogout),
		},
		Actions: []module.Action{
			{Pattern: http.MethodPost + " " + routepath.Login, Handler: http.HandlerFunc(h.handleLogin)},
			{Pattern: http.MethodPost + " " + routepath.Register, Handler: http.HandlerFunc(h.handleRegister)},
			{Pattern: http.MethodPost + " " + routepath.Logout, Handler: http.HandlerFunc(h.handleLogout)},
		},
	}, nil
}
