package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// Chrome is the viewer state shown in the page header.
type Chrome struct {
	Username string
	RoleKey  string
	SignedIn bool
}

// Toast is a one-time notice rendered above the page body.
type Toast struct {
	Kind    string
	Message string
}

// LayoutData configures the page shell.
type LayoutData struct {
	Title  string
	Lang   string
	Chrome Chrome
	Toast  *Toast
}

type navItem struct {
	href string
	key  string
}

var navItems = []navItem{
	{href: routepath.Root, key: "nav.home"},
	{href: routepath.Available, key: "nav.available"},
	{href: routepath.Owner, key: "nav.owner"},
	{href: routepath.Manager, key: "nav.manager"},
	{href: routepath.Tenant, key: "nav.tenant"},
	{href: routepath.About, key: "nav.about"},
}

// Layout renders the document shell around its templ children.
func Layout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		lang := data.Lang
		if lang == "" {
			lang = "en-US"
		}
		title := T(ctx, "app.name")
		if data.Title != "" {
			title = data.Title + " | " + title
		}

		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", lang)
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.open("meta", "name", "description", "content", T(ctx, "app.meta_description"))
		h.elem("title", title)
		h.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"app.css")
		h.raw("</head><body>")

		h.open("header", "class", "site-header")
		h.link(routepath.Root, T(ctx, "app.name"), "class", "brand")
		h.open("nav", "class", "site-nav")
		for _, item := range navItems {
			h.link(item.href, T(ctx, item.key))
		}
		h.close("nav")
		writeAccountMenu(ctx, h, data.Chrome)
		h.close("header")

		h.open("main", "class", "site-main")
		if data.Toast != nil && data.Toast.Message != "" {
			h.elem("p", data.Toast.Message, "class", "toast toast-"+data.Toast.Kind, "role", "status")
		}
		h.render(ctx, templ.GetChildren(ctx))
		h.close("main")

		h.open("footer", "class", "site-footer")
		h.link(routepath.About, T(ctx, "nav.about"))
		h.raw(" · ")
		h.link("?lang=en-US", "English")
		h.raw(" · ")
		h.link("?lang=pt-BR", "Português")
		h.close("footer")
		h.raw("</body></html>")
		return h.err
	})
}

func writeAccountMenu(ctx context.Context, h *htmlWriter, chrome Chrome) {
	h.open("div", "class", "account-menu")
	if !chrome.SignedIn {
		h.link(routepath.Login, T(ctx, "nav.login"))
		h.link(routepath.Register, T(ctx, "nav.register"))
		h.close("div")
		return
	}
	label := chrome.Username
	if chrome.RoleKey != "" {
		label += " (" + T(ctx, chrome.RoleKey) + ")"
	}
	h.elem("span", T(ctx, "nav.signed_in_as", label), "class", "viewer")
	h.open("form", "method", "post", "action", routepath.Logout, "class", "inline")
	h.elem("button", T(ctx, "nav.logout"), "type", "submit")
	h.close("form")
	h.close("div")
}
