package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// HomeData configures the landing page.
type HomeData struct {
	Username      string
	DashboardHref string
}

// HomePage renders the landing page.
func HomePage(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "hero")
		h.elem("h1", T(ctx, "home.heading"))
		h.elem("p", T(ctx, "home.tagline"))
		if data.Username != "" {
			h.elem("p", T(ctx, "home.welcome_back", data.Username))
			if data.DashboardHref != "" {
				h.link(data.DashboardHref, T(ctx, "home.open_dashboard"), "class", "button")
			}
		} else {
			h.link(routepath.Available, T(ctx, "home.browse"), "class", "button")
			h.link(routepath.Register, T(ctx, "home.register"), "class", "button secondary")
		}
		h.close("section")
		return h.err
	})
}

// AboutPage renders the about page.
func AboutPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "about")
		h.elem("h1", T(ctx, "about.heading"))
		h.elem("p", T(ctx, "about.body"))
		h.open("ul")
		h.elem("li", T(ctx, "about.owners"))
		h.elem("li", T(ctx, "about.managers"))
		h.elem("li", T(ctx, "about.tenants"))
		h.close("ul")
		h.close("section")
		return h.err
	})
}

// ErrorTitleKey returns the catalog key of the page title for an error
// status.
func ErrorTitleKey(status int) string {
	return errorKeyPrefix(status) + ".title"
}

func errorKeyPrefix(status int) string {
	switch status {
	case http.StatusNotFound:
		return "error.not_found"
	case http.StatusForbidden:
		return "error.forbidden"
	default:
		return "error.server"
	}
}

// ErrorState renders the body of an error page.
func ErrorState(status int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "error-state")
		h.elem("h1", T(ctx, ErrorTitleKey(status)))
		h.elem("p", T(ctx, errorKeyPrefix(status)+".body"))
		h.link(routepath.Root, T(ctx, "error.back_home"), "class", "button")
		h.close("section")
		return h.err
	})
}
