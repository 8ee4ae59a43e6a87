package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// LeaseRow is one lease as shown on the manager and tenant dashboards.
type LeaseRow struct {
	ID           string
	Tenant       string
	PropertyName string
	PropertyHref string
	Start        string
	End          string
	TermMonths   int
	RentCents    int64
	Status       string
	StatusAction string
}

// Option is a value and its visible label.
type Option struct {
	Value string
	Label string
}

// LeaseForm holds submitted values when re-rendering the create form.
type LeaseForm struct {
	Tenant     string
	PropertyID string
	Start      string
	TermMonths string
	Rent       string
	ErrorKey   string
}

// ManagerData configures the manager dashboard.
type ManagerData struct {
	Leases     []LeaseRow
	Properties []Option
	Statuses   []string
	Form       LeaseForm
}

// ManagerPage renders the lease table and the create-lease form.
func ManagerPage(data ManagerData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "dashboard manager")
		h.elem("h1", T(ctx, "manager.heading"))
		if len(data.Leases) == 0 {
			h.elem("p", T(ctx, "manager.empty"), "class", "empty")
		} else {
			writeLeaseTable(ctx, h, data)
		}

		h.elem("h2", T(ctx, "manager.new_lease"))
		writeFormError(ctx, h, data.Form.ErrorKey)
		h.open("form", "method", "post", "action", routepath.ManagerLeases, "class", "stacked")
		writeInput(ctx, h, "lease.field.tenant", "tenant", "text", data.Form.Tenant, "required", "required")
		h.open("label")
		h.text(T(ctx, "lease.field.property"))
		h.open("select", "name", "property_id")
		for _, option := range data.Properties {
			if option.Value == data.Form.PropertyID {
				h.open("option", "value", option.Value, "selected", "selected")
			} else {
				h.open("option", "value", option.Value)
			}
			h.text(option.Label)
			h.close("option")
		}
		h.close("select")
		h.close("label")
		writeInput(ctx, h, "lease.field.start", "start_date", "date", data.Form.Start, "required", "required")
		writeInput(ctx, h, "lease.field.term", "term_months", "number", data.Form.TermMonths, "min", "1")
		writeInput(ctx, h, "lease.field.rent", "rent", "text", data.Form.Rent, "inputmode", "decimal")
		h.elem("button", T(ctx, "manager.submit"), "type", "submit")
		h.close("form")
		h.close("section")
		return h.err
	})
}

func writeLeaseTable(ctx context.Context, h *htmlWriter, data ManagerData) {
	h.open("table", "class", "leases")
	h.open("thead")
	h.open("tr")
	for _, key := range []string{"lease.col.tenant", "lease.col.property", "lease.col.start", "lease.col.end", "lease.col.rent", "lease.col.status", "lease.col.update"} {
		h.elem("th", T(ctx, key))
	}
	h.close("tr")
	h.close("thead")
	h.open("tbody")
	for _, lease := range data.Leases {
		h.open("tr")
		h.elem("td", lease.Tenant)
		h.open("td")
		writePropertyLink(h, lease)
		h.close("td")
		h.elem("td", lease.Start)
		h.elem("td", lease.End)
		h.elem("td", Money(ctx, lease.RentCents))
		h.elem("td", T(ctx, "lease.status."+lease.Status), "class", "status status-"+lease.Status)
		h.open("td")
		h.open("form", "method", "post", "action", lease.StatusAction, "class", "inline")
		h.open("select", "name", "status")
		for _, status := range data.Statuses {
			if status == lease.Status {
				h.open("option", "value", status, "selected", "selected")
			} else {
				h.open("option", "value", status)
			}
			h.text(T(ctx, "lease.status."+status))
			h.close("option")
		}
		h.close("select")
		h.elem("button", T(ctx, "manager.update_status"), "type", "submit")
		h.close("form")
		h.close("td")
		h.close("tr")
	}
	h.close("tbody")
	h.close("table")
}

func writePropertyLink(h *htmlWriter, lease LeaseRow) {
	if lease.PropertyHref == "" {
		h.text(lease.PropertyName)
		return
	}
	h.link(lease.PropertyHref, lease.PropertyName)
}

// TenantData configures the tenant dashboard. Lease is nil when the tenant
// has none on file.
type TenantData struct {
	Lease *LeaseRow
}

// TenantPage renders the signed-in tenant's lease.
func TenantPage(data TenantData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "dashboard tenant")
		h.elem("h1", T(ctx, "tenant.heading"))
		if data.Lease == nil {
			h.elem("p", T(ctx, "tenant.no_lease"), "class", "empty")
			h.link(routepath.Available, T(ctx, "home.browse"), "class", "button")
			h.close("section")
			return h.err
		}
		lease := data.Lease
		h.open("dl", "class", "lease")
		h.elem("dt", T(ctx, "lease.col.property"))
		h.open("dd")
		writePropertyLink(h, *lease)
		h.close("dd")
		h.elem("dt", T(ctx, "lease.col.start"))
		h.elem("dd", lease.Start)
		h.elem("dt", T(ctx, "lease.col.end"))
		h.elem("dd", lease.End)
		h.elem("dt", T(ctx, "lease.field.term"))
		h.elem("dd", itoa(lease.TermMonths))
		h.elem("dt", T(ctx, "lease.col.rent"))
		h.elem("dd", Money(ctx, lease.RentCents))
		h.elem("dt", T(ctx, "lease.col.status"))
		h.elem("dd", T(ctx, "lease.status."+lease.Status), "class", "status status-"+lease.Status)
		h.close("dl")
		h.close("section")
		return h.err
	})
}

// SignInPrompt renders the body shown when a dashboard needs a role the
// viewer does not hold.
func SignInPrompt(roleKey string, signedIn bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "card prompt")
		h.elem("h1", T(ctx, "prompt.heading"))
		if signedIn {
			h.elem("p", T(ctx, "prompt.wrong_role", T(ctx, roleKey)))
		} else {
			h.elem("p", T(ctx, "prompt.sign_in", T(ctx, roleKey)))
			h.link(routepath.Login, T(ctx, "nav.login"), "class", "button")
		}
		h.close("section")
		return h.err
	})
}
