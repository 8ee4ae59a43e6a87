// Package guard decides, before each navigation, whether the target route
// may render for the current session or the visitor must sign in first.
package guard

import "github.com/leasedesk/leasedesk/internal/services/web/route"

// Session is the request's authentication state as seen by the guard. An
// empty Token means nobody is signed in.
type Session struct {
	Token string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Decision is the guard outcome. The zero Decision lets navigation proceed.
type Decision struct {
	Redirect route.Name
}

// Proceed reports whether navigation continues to the target route.
func (d Decision) Proceed() bool {
	return d.Redirect == ""
}

// Outcome labels the decision for logs and metrics.
func (d Decision) Outcome() string {
	if d.Proceed() {
		return "proceed"
	}
	return "redirect"
}

// Check redirects to the login route when target requires auth and the
// session is unauthenticated. Every other combination proceeds.
func Check(target route.Route, session Session) Decision {
	if target.RequiresAuth && !session.Authenticated() {
		return Decision{Redirect: route.Login}
	}
	return Decision{}
}
