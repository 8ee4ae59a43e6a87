package leases

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

func (h handlers) handleManager(w http.ResponseWriter, r *http.Request) {
	if !h.Viewer(r).Is(storage.RoleManager) {
		h.WriteRolePrompt(w, r, "title.manager", storage.RoleManager)
		return
	}
	h.writeManager(w, r, http.StatusOK, webtemplates.LeaseForm{})
}

func (h handlers) handleTenant(w http.ResponseWriter, r *http.Request) {
	viewer := h.Viewer(r)
	if !viewer.Is(storage.RoleTenant) {
		h.WriteRolePrompt(w, r, "title.tenant", storage.RoleTenant)
		return
	}
	detail, err := h.service.tenantLease(r.Context(), viewer.UserID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	data := webtemplates.TenantData{}
	if detail != nil {
		row := leaseRow(*detail)
		data.Lease = &row
	}
	h.WritePage(w, r, "title.tenant", http.StatusOK, webtemplates.TenantPage(data))
}

func (h handlers) handleCreateLease(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.RequireRole(w, r, storage.RoleManager); !ok {
		return
	}
	if err := modulehandler.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	input := leaseInput{
		Tenant:     modulehandler.FormValue(r, "tenant"),
		PropertyID: modulehandler.FormValue(r, "property_id"),
		Start:      modulehandler.FormValue(r, "start_date"),
		TermMonths: modulehandler.FormValue(r, "term_months"),
		Rent:       modulehandler.FormValue(r, "rent"),
	}
	if _, err := h.service.createLease(r.Context(), input); err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidInput {
			h.WriteError(w, r, err)
			return
		}
		h.writeManager(w, r, http.StatusBadRequest, webtemplates.LeaseForm{
			Tenant:     input.Tenant,
			PropertyID: input.PropertyID,
			Start:      input.Start,
			TermMonths: input.TermMonths,
			Rent:       input.Rent,
			ErrorKey:   apperrors.LocalizationKey(err),
		})
		return
	}
	h.Flash(w, r, flashnotice.Success("notice.lease_created"))
	h.Redirect(w, r, h.RoutePath(route.Manager, routepath.Manager))
}

func (h handlers) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.RequireRole(w, r, storage.RoleManager); !ok {
		return
	}
	if err := modulehandler.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	err := h.service.updateStatus(r.Context(), r.PathValue("leaseID"), modulehandler.FormValue(r, "status"))
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidInput {
			h.WriteError(w, r, err)
			return
		}
		h.Flash(w, r, flashnotice.Failure(apperrors.LocalizationKey(err)))
	} else {
		h.Flash(w, r, flashnotice.Success("notice.lease_status_updated"))
	}
	h.Redirect(w, r, h.RoutePath(route.Manager, routepath.Manager))
}

func (h handlers) writeManager(w http.ResponseWriter, r *http.Request, status int, form webtemplates.LeaseForm) {
	details, err := h.service.managerLeases(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	properties, err := h.service.leasableProperties(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	rows := make([]webtemplates.LeaseRow, 0, len(details))
	for _, detail := range details {
		rows = append(rows, leaseRow(detail))
	}
	options := make([]webtemplates.Option, 0, len(properties))
	for _, p := range properties {
		options = append(options, webtemplates.Option{Value: p.ID, Label: p.Name})
	}
	statusValues := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusValues = append(statusValues, string(s))
	}
	h.WritePage(w, r, "title.manager", status, webtemplates.ManagerPage(webtemplates.ManagerData{
		Leases:     rows,
		Properties: options,
		Statuses:   statusValues,
		Form:       form,
	}))
}

func leaseRow(detail leaseDetail) webtemplates.LeaseRow {
	lease := detail.Lease
	row := webtemplates.LeaseRow{
		ID:           lease.ID,
		Tenant:       detail.Tenant,
		PropertyName: detail.PropertyName,
		Start:        lease.StartDate.Format(dateLayout),
		End:          lease.EndDate.Format(dateLayout),
		TermMonths:   lease.TermMonths,
		RentCents:    lease.RentCents,
		Status:       string(lease.Status),
		StatusAction: routepath.ManagerLeaseStatus(lease.ID),
	}
	if detail.PropertyFound {
		row.PropertyHref = routepath.Property(lease.PropertyID)
	}
	return row
}
