package properties

import (
	"net/http"

	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	flashnotice "github.com/leasedesk/leasedesk/internal/services/web/platform/flash"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/modulehandler"
	"github.com/leasedesk/leasedesk/internal/services/web/route"
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	webtemplates "github.com/leasedesk/leasedesk/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(base modulehandler.Base, s service) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.property(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WriteTitledPage(w, r, property.Name, http.StatusOK, webtemplates.PropertyPage(propertyCard(property)))
}

func (h handlers) handleAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(routepath.AvailableQueryKey)
	list, err := h.service.available(r.Context(), query)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, "title.available", http.StatusOK, webtemplates.AvailablePage(webtemplates.AvailableData{
		Query:      query,
		Properties: propertyCards(list),
	}))
}

func (h handlers) handleOwner(w http.ResponseWriter, r *http.Request) {
	viewer := h.Viewer(r)
	if !viewer.Is(storage.RoleOwner) {
		h.WriteRolePrompt(w, r, "title.owner", storage.RoleOwner)
		return
	}
	h.writeOwner(w, r, viewer.UserID, http.StatusOK, webtemplates.PropertyForm{})
}

func (h handlers) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.RequireRole(w, r, storage.RoleOwner)
	if !ok {
		return
	}
	if err := modulehandler.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	input := propertyInput{
		Name:        modulehandler.FormValue(r, "name"),
		Address:     modulehandler.FormValue(r, "address"),
		City:        modulehandler.FormValue(r, "city"),
		State:       modulehandler.FormValue(r, "state"),
		Zip:         modulehandler.FormValue(r, "zip"),
		Bedrooms:    modulehandler.FormValue(r, "bedrooms"),
		Bathrooms:   modulehandler.FormValue(r, "bathrooms"),
		Rent:        modulehandler.FormValue(r, "rent"),
		Description: modulehandler.FormValue(r, "description"),
	}
	if _, err := h.service.createProperty(r.Context(), viewer.UserID, input); err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidInput {
			h.WriteError(w, r, err)
			return
		}
		form := formFromInput(input)
		form.ErrorKey = apperrors.LocalizationKey(err)
		h.writeOwner(w, r, viewer.UserID, http.StatusBadRequest, form)
		return
	}
	h.Flash(w, r, flashnotice.Success("notice.property_created"))
	h.Redirect(w, r, h.RoutePath(route.Owner, routepath.Owner))
}

func (h handlers) writeOwner(w http.ResponseWriter, r *http.Request, ownerID string, status int, form webtemplates.PropertyForm) {
	dashboard, err := h.service.ownerDashboard(r.Context(), ownerID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, "title.owner", status, webtemplates.OwnerPage(webtemplates.OwnerData{
		Properties:     propertyCards(dashboard.Properties),
		RentTotalCents: dashboard.RentTotalCents,
		Form:           form,
	}))
}

func formFromInput(in propertyInput) webtemplates.PropertyForm {
	return webtemplates.PropertyForm{
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Zip:         in.Zip,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Rent:        in.Rent,
		Description: in.Description,
	}
}

func propertyCards(list []storage.Property) []webtemplates.PropertyCard {
	cards := make([]webtemplates.PropertyCard, 0, len(list))
	for _, p := range list {
		cards = append(cards, propertyCard(p))
	}
	return cards
}

func propertyCard(p storage.Property) webtemplates.PropertyCard {
	return webtemplates.PropertyCard{
		ID:          p.ID,
		Href:        routepath.Property(p.ID),
		Name:        p.Name,
		Address:     p.Address,
		Location:    location(p),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		RentCents:   p.RentCents,
		Available:   p.Available,
		Description: p.Description,
	}
}

// location renders "City, ST 12345" from whichever parts are present.
func location(p storage.Property) string {
	out := p.City
	if p.State != "" {
		if out != "" {
			out += ", "
		}
		out += p.State
	}
	if p.Zip != "" {
		if out != "" {
			out += " "
		}
		out += p.Zip
	}
	return out
}
