package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// PropertyCard is a property summary shown in listings and on its own page.
type PropertyCard struct {
	ID          string
	Href        string
	Name        string
	Address     string
	Location    string
	Bedrooms    int
	Bathrooms   int
	RentCents   int64
	Available   bool
	Description string
}

// PropertyPage renders a single property.
func PropertyPage(property PropertyCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("article", "class", "property")
		h.elem("h1", property.Name)
		h.elem("p", property.Address, "class", "address")
		h.elem("p", property.Location, "class", "location")
		writePropertyFacts(ctx, h, property)
		if property.Description != "" {
			h.elem("p", property.Description, "class", "description")
		}
		h.link(routepath.Available, T(ctx, "property.back"))
		h.close("article")
		return h.err
	})
}

// AvailableData configures the available listings page.
type AvailableData struct {
	Query      string
	Properties []PropertyCard
}

// AvailablePage renders the search form and available properties.
func AvailablePage(data AvailableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "available")
		h.elem("h1", T(ctx, "available.heading"))
		h.open("form", "method", "get", "action", routepath.Available, "class", "search")
		h.open("label")
		h.text(T(ctx, "available.search_label"))
		h.open("input", "type", "search", "name", routepath.AvailableQueryKey, "value", data.Query)
		h.close("label")
		h.elem("button", T(ctx, "available.search_submit"), "type", "submit")
		h.close("form")
		if len(data.Properties) == 0 {
			if data.Query != "" {
				h.elem("p", T(ctx, "available.no_match", data.Query), "class", "empty")
			} else {
				h.elem("p", T(ctx, "available.empty"), "class", "empty")
			}
		}
		writePropertyList(ctx, h, data.Properties)
		h.close("section")
		return h.err
	})
}

// PropertyForm holds submitted values when re-rendering the create form.
type PropertyForm struct {
	Name        string
	Address     string
	City        string
	State       string
	Zip         string
	Bedrooms    string
	Bathrooms   string
	Rent        string
	Description string
	ErrorKey    string
}

// OwnerData configures the owner dashboard.
type OwnerData struct {
	Properties     []PropertyCard
	RentTotalCents int64
	Form           PropertyForm
}

// OwnerPage renders the owner dashboard.
func OwnerPage(data OwnerData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		h.open("section", "class", "dashboard owner")
		h.elem("h1", T(ctx, "owner.heading"))
		h.open("dl", "class", "stats")
		h.elem("dt", T(ctx, "owner.rent_total"))
		h.elem("dd", Money(ctx, data.RentTotalCents))
		h.elem("dt", T(ctx, "owner.property_count"))
		h.elem("dd", itoa(len(data.Properties)))
		h.close("dl")

		h.elem("h2", T(ctx, "owner.properties"))
		if len(data.Properties) == 0 {
			h.elem("p", T(ctx, "owner.empty"), "class", "empty")
		}
		writePropertyList(ctx, h, data.Properties)

		h.elem("h2", T(ctx, "owner.add_property"))
		writeFormError(ctx, h, data.Form.ErrorKey)
		h.open("form", "method", "post", "action", routepath.OwnerProperties, "class", "stacked")
		writeInput(ctx, h, "property.field.name", "name", "text", data.Form.Name, "required", "required")
		writeInput(ctx, h, "property.field.address", "address", "text", data.Form.Address, "required", "required")
		writeInput(ctx, h, "property.field.city", "city", "text", data.Form.City)
		writeInput(ctx, h, "property.field.state", "state", "text", data.Form.State)
		writeInput(ctx, h, "property.field.zip", "zip", "text", data.Form.Zip)
		writeInput(ctx, h, "property.field.bedrooms", "bedrooms", "number", data.Form.Bedrooms, "min", "0")
		writeInput(ctx, h, "property.field.bathrooms", "bathrooms", "number", data.Form.Bathrooms, "min", "0")
		writeInput(ctx, h, "property.field.rent", "rent", "text", data.Form.Rent, "inputmode", "decimal")
		h.open("label")
		h.text(T(ctx, "property.field.description"))
		h.elem("textarea", data.Form.Description, "name", "description", "rows", "3")
		h.close("label")
		h.elem("button", T(ctx, "owner.submit"), "type", "submit")
		h.close("form")
		h.close("section")
		return h.err
	})
}

func writePropertyList(ctx context.Context, h *htmlWriter, properties []PropertyCard) {
	if len(properties) == 0 {
		return
	}
	h.open("ul", "class", "property-list")
	for _, property := range properties {
		h.open("li", "class", "property-card")
		h.open("h3")
		h.link(property.Href, property.Name)
		h.close("h3")
		h.elem("p", joinNonEmpty(", ", property.Address, property.Location), "class", "address")
		writePropertyFacts(ctx, h, property)
		h.close("li")
	}
	h.close("ul")
}

func writePropertyFacts(ctx context.Context, h *htmlWriter, property PropertyCard) {
	h.open("ul", "class", "facts")
	h.elem("li", T(ctx, "property.bedrooms", property.Bedrooms))
	h.elem("li", T(ctx, "property.bathrooms", property.Bathrooms))
	h.elem("li", T(ctx, "property.rent", Money(ctx, property.RentCents)))
	if property.Available {
		h.elem("li", T(ctx, "property.available"), "class", "badge available")
	} else {
		h.elem("li", T(ctx, "property.leased"), "class", "badge leased")
	}
	h.close("ul")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
