package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/leasedesk/leasedesk/internal/services/web/auth"
	"github.com/leasedesk/leasedesk/internal/services/web/guard"
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/httpx"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/sessioncookie"
)

// requestPrincipalState memoizes the session lookup for one request so the
// guard, the page chrome and the handlers share a single store round trip.
type requestPrincipalState struct {
	once      sync.Once
	token     string
	principal auth.Principal
	ok        bool
}

type requestPrincipalStateKey struct{}

type tokenResolver interface {
	Resolve(ctx context.Context, token string) (auth.Principal, bool)
}

type principalResolver struct {
	tokens tokenResolver
}

func newPrincipalResolver(tokens tokenResolver) principalResolver {
	return principalResolver{tokens: tokens}
}

func (r principalResolver) resolveUncached(req *http.Request) (string, auth.Principal, bool) {
	if req == nil || r.tokens == nil {
		return "", auth.Principal{}, false
	}
	token, ok := sessioncookie.Read(req)
	if !ok {
		return "", auth.Principal{}, false
	}
	principal, ok := r.tokens.Resolve(httpx.RequestContext(req), token)
	if !ok {
		return "", auth.Principal{}, false
	}
	return token, principal, true
}

func (r principalResolver) resolve(req *http.Request) (string, auth.Principal, bool) {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.once.Do(func() {
			state.token, state.principal, state.ok = r.resolveUncached(req)
		})
		return state.token, state.principal, state.ok
	}
	return r.resolveUncached(req)
}

// resolveSession reports the token only when it still resolves to a live
// session, so a stale cookie reads as signed out.
func (r principalResolver) resolveSession(req *http.Request) guard.Session {
	token, _, ok := r.resolve(req)
	if !ok {
		return guard.Session{}
	}
	return guard.Session{Token: token}
}

func (r principalResolver) resolveViewer(req *http.Request) module.Viewer {
	_, principal, ok := r.resolve(req)
	if !ok {
		return module.Viewer{}
	}
	return module.Viewer{
		UserID:   principal.UserID,
		Username: principal.Username,
		Role:     principal.Role,
	}
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
