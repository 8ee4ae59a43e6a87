package account

import (
	"log"
	"net/http"
	"strings"

	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	flashnotice "github.com/leasedesk/leasedesk/internal/services/web/platform/flash"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/modulehandler"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/sessioncookie"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	webtemplates "github.com/leasedesk/leasedesk/internal/services/web/templates"
)

const genericFormErrorKey = "form.error.generic"

var roleOptions = []webtemplates.RoleOption{
	{Value: string(storage.RoleTenant), Key: "role.tenant"},
	{Value: string(storage.RoleOwner), Key: "role.owner"},
	{Value: string(storage.RoleManager), Key: "role.manager"},
}

type handlers struct {
	modulehandler.Base
	accounts module.AccountService
}

func newHandlers(base modulehandler.Base, accounts module.AccountService) handlers {
	return handlers{Base: base, accounts: accounts}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.writeLogin(w, r, http.StatusOK, webtemplates.LoginData{
		Registered: r.URL.Query().Get(routepath.RegistrationQueryKey) == routepath.RegistrationSucceeded,
	})
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.writeRegister(w, r, http.StatusOK, webtemplates.RegisterData{Role: string(storage.RoleTenant)})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := modulehandler.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	username := modulehandler.FormValue(r, "username")
	grant, err := h.accounts.Login(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		status, key, ok := formFailure(err)
		if !ok {
			log.Printf("login %q: %v", username, err)
			h.WriteError(w, r, err)
			return
		}
		h.writeLogin(w, r, status, webtemplates.LoginData{Username: username, ErrorKey: key})
		return
	}
	sessioncookie.Write(w, r, h.Dependencies().SchemePolicy, grant.Token, grant.ExpiresAt)
	h.Redirect(w, r, h.DashboardPath(grant.Principal.Role))
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := modulehandler.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	username := modulehandler.FormValue(r, "username")
	role := storage.Role(modulehandler.FormValue(r, "role"))
	_, err := h.accounts.Register(r.Context(), username, r.PostFormValue("password"), r.PostFormValue("confirm"), role)
	if err != nil {
		status, key, ok := formFailure(err)
		if !ok {
			log.Printf("register %q: %v", username, err)
			h.WriteError(w, r, err)
			return
		}
		h.writeRegister(w, r, status, webtemplates.RegisterData{Username: username, Role: string(role), ErrorKey: key})
		return
	}
	h.Redirect(w, r, routepath.LoginAfterRegistration())
}

// handleLogout revokes the session, clears the cookie and returns to the
// login page. Revocation failures still sign the browser out.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := sessioncookie.Read(r); ok {
		if err := h.accounts.Logout(r.Context(), token); err != nil {
			log.Printf("logout: revoke session: %v", err)
		}
		h.Flash(w, r, flashnotice.Notice{Kind: flashnotice.KindInfo, Key: "notice.signed_out"})
	}
	sessioncookie.Clear(w, r, h.Dependencies().SchemePolicy)
	h.Redirect(w, r, h.RoutePath(route.Login, routepath.Login))
}

func (h handlers) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	viewer := h.Viewer(r)
	if !viewer.SignedIn() {
		return false
	}
	h.Redirect(w, r, h.DashboardPath(viewer.Role))
	return true
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, status int, data webtemplates.LoginData) {
	h.WritePage(w, r, "title.login", status, webtemplates.LoginPage(data))
}

func (h handlers) writeRegister(w http.ResponseWriter, r *http.Request, status int, data webtemplates.RegisterData) {
	data.Roles = roleOptions
	h.WritePage(w, r, "title.register", status, webtemplates.RegisterPage(data))
}

// formFailure maps an account error to the status and message key used to
// re-render a form. Errors outside the user-correctable kinds report false.
func formFailure(err error) (int, string, bool) {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindUnauthorized, apperrors.KindConflict:
	default:
		return 0, "", false
	}
	key := strings.TrimSpace(apperrors.LocalizationKey(err))
	if key == "" {
		key = genericFormErrorKey
	}
	return apperrors.HTTPStatus(err), key, true
}
