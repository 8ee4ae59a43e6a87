package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// LoginData configures the sign-in form.
type LoginData struct {
	Username   string
	ErrorKey   string
	Registered bool
}

// LoginPage renders the sign-in form.
func LoginPage(data LoginData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "card auth")
		h.elem("h1", T(ctx, "login.heading"))
		if data.Registered {
			h.elem("p", T(ctx, "login.registered"), "class", "toast toast-success", "role", "status")
		}
		writeFormError(ctx, h, data.ErrorKey)
		h.open("form", "method", "post", "action", routepath.Login)
		writeInput(ctx, h, "login.username", "username", "text", data.Username, "autocomplete", "username")
		writeInput(ctx, h, "login.password", "password", "password", "", "autocomplete", "current-password")
		h.elem("button", T(ctx, "login.submit"), "type", "submit")
		h.close("form")
		h.open("p")
		h.text(T(ctx, "login.no_account") + " ")
		h.link(routepath.Register, T(ctx, "nav.register"))
		h.close("p")
		h.close("section")
		return h.err
	})
}

// RoleOption is one choice in the registration role picker.
type RoleOption struct {
	Value string
	Key   string
}

// RegisterData configures the registration form.
type RegisterData struct {
	Username string
	Role     string
	Roles    []RoleOption
	ErrorKey string
}

// RegisterPage renders the registration form.
func RegisterPage(data RegisterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "card auth")
		h.elem("h1", T(ctx, "register.heading"))
		writeFormError(ctx, h, data.ErrorKey)
		h.open("form", "method", "post", "action", routepath.Register)
		writeInput(ctx, h, "register.username", "username", "text", data.Username, "autocomplete", "username")
		writeInput(ctx, h, "register.password", "password", "password", "", "autocomplete", "new-password")
		writeInput(ctx, h, "register.confirm", "confirm", "password", "", "autocomplete", "new-password")
		h.open("label")
		h.text(T(ctx, "register.role"))
		h.open("select", "name", "role")
		for _, option := range data.Roles {
			if option.Value == data.Role {
				h.open("option", "value", option.Value, "selected", "selected")
			} else {
				h.open("option", "value", option.Value)
			}
			h.text(T(ctx, option.Key))
			h.close("option")
		}
		h.close("select")
		h.close("label")
		h.elem("button", T(ctx, "register.submit"), "type", "submit")
		h.close("form")
		h.close("section")
		return h.err
	})
}

func writeFormError(ctx context.Context, h *htmlWriter, key string) {
	if key == "" {
		return
	}
	h.elem("p", T(ctx, key), "class", "form-error", "role", "alert")
}

func writeInput(ctx context.Context, h *htmlWriter, labelKey, name, kind, value string, attrs ...string) {
	h.open("label")
	h.text(T(ctx, labelKey))
	input := []string{"name", name, "type", kind}
	if value != "" {
		input = append(input, "value", value)
	}
	h.open("input", append(input, attrs...)...)
	h.close("label")
}
