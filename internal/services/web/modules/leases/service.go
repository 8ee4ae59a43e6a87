package leases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leasedesk/leasedesk/internal/platform/id"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/money"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
)

const (
	dateLayout        = "2006-01-02"
	defaultTermMonths = 12
	maxTermMonths     = 120
)

var (
	errTenantNotFound   = apperrors.EK(apperrors.KindInvalidInput, "lease.error.tenant_not_found", "tenant not found")
	errPropertyRequired = apperrors.EK(apperrors.KindInvalidInput, "lease.error.property_required", "property is required")
	errPropertyNotFound = apperrors.EK(apperrors.KindInvalidInput, "lease.error.property_not_found", "property not found")
	errInvalidStart     = apperrors.EK(apperrors.KindInvalidInput, "lease.error.invalid_start", "start date must be YYYY-MM-DD")
	errInvalidTerm      = apperrors.EK(apperrors.KindInvalidInput, "lease.error.invalid_term", "term must be between 1 and 120 months")
	errInvalidRent      = apperrors.EK(apperrors.KindInvalidInput, "lease.error.invalid_rent", "rent must be a non-negative amount")
	errInvalidStatus    = apperrors.EK(apperrors.KindInvalidInput, "lease.error.invalid_status", "lease status is invalid")
	errLeaseNotFound    = apperrors.EK(apperrors.KindNotFound, "error.not_found.body", "lease not found")
)

// statuses lists lease states in the order managers pick them.
var statuses = []storage.LeaseStatus{
	storage.LeasePending,
	storage.LeaseActive,
	storage.LeaseEnded,
	storage.LeaseRejected,
}

// leaseInput is the manager-submitted create form.
type leaseInput struct {
	Tenant     string
	PropertyID string
	Start      string
	TermMonths string
	Rent       string
}

// leaseDetail is a lease joined with its tenant and property names.
type leaseDetail struct {
	Lease        storage.Lease
	Tenant       string
	PropertyName string
	// PropertyFound is false when the property record is gone.
	PropertyFound bool
}

type service struct {
	users      storage.UserStore
	properties storage.PropertyStore
	leases     storage.LeaseStore
}

func newService(users storage.UserStore, properties storage.PropertyStore, leases storage.LeaseStore) service {
	return service{users: users, properties: properties, leases: leases}
}

// managerLeases returns every lease joined with tenant and property names.
func (s service) managerLeases(ctx context.Context) ([]leaseDetail, error) {
	list, err := s.leases.ListLeases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	usernames := map[string]string{}
	properties := map[string]*storage.Property{}
	details := make([]leaseDetail, 0, len(list))
	for _, lease := range list {
		detail, err := s.describe(ctx, lease, usernames, properties)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// tenantLease returns the tenant's latest lease, or nil when none exists.
func (s service) tenantLease(ctx context.Context, userID string) (*leaseDetail, error) {
	lease, err := s.leases.GetLeaseByUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant lease: %w", err)
	}
	detail, err := s.describe(ctx, lease, map[string]string{}, map[string]*storage.Property{})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s service) describe(ctx context.Context, lease storage.Lease, usernames map[string]string, properties map[string]*storage.Property) (leaseDetail, error) {
	detail := leaseDetail{Lease: lease}
	username, ok := usernames[lease.UserID]
	if !ok {
		user, err := s.users.GetUser(ctx, lease.UserID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			username = lease.UserID
		case err != nil:
			return leaseDetail{}, fmt.Errorf("get lease tenant: %w", err)
		default:
			username = user.Username
		}
		usernames[lease.UserID] = username
	}
	detail.Tenant = username

	property, ok := properties[lease.PropertyID]
	if !ok {
		record, err := s.properties.GetProperty(ctx, lease.PropertyID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
		case err != nil:
			return leaseDetail{}, fmt.Errorf("get lease property: %w", err)
		default:
			property = &record
		}
		properties[lease.PropertyID] = property
	}
	if property != nil {
		detail.PropertyName = property.Name
		detail.PropertyFound = true
	} else {
		detail.PropertyName = lease.PropertyID
	}
	return detail, nil
}

// leasableProperties lists the properties a manager can lease out.
func (s service) leasableProperties(ctx context.Context) ([]storage.Property, error) {
	list, err := s.properties.ListAvailableProperties(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list leasable properties: %w", err)
	}
	return list, nil
}

// createLease validates input and stores a pending lease. A blank rent uses
// the property's listed rent and a blank term defaults to twelve months.
func (s service) createLease(ctx context.Context, input leaseInput) (storage.Lease, error) {
	username := strings.TrimSpace(input.Tenant)
	if username == "" {
		return storage.Lease{}, errTenantNotFound
	}
	tenant, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Lease{}, errTenantNotFound
	}
	if err != nil {
		return storage.Lease{}, fmt.Errorf("get tenant: %w", err)
	}
	if tenant.Role != storage.RoleTenant {
		return storage.Lease{}, errTenantNotFound
	}

	propertyID := strings.TrimSpace(input.PropertyID)
	if propertyID == "" {
		return storage.Lease{}, errPropertyRequired
	}
	property, err := s.properties.GetProperty(ctx, propertyID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Lease{}, errPropertyNotFound
	}
	if err != nil {
		return storage.Lease{}, fmt.Errorf("get property: %w", err)
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(input.Start))
	if err != nil {
		return storage.Lease{}, errInvalidStart
	}
	term := defaultTermMonths
	if raw := strings.TrimSpace(input.TermMonths); raw != "" {
		term, err = strconv.Atoi(raw)
		if err != nil || term < 1 || term > maxTermMonths {
			return storage.Lease{}, errInvalidTerm
		}
	}
	rent := property.RentCents
	if raw := strings.TrimSpace(input.Rent); raw != "" {
		rent, err = money.ParseCents(raw)
		if err != nil {
			return storage.Lease{}, errInvalidRent
		}
	}

	leaseID, err := id.NewPrefixed("lea")
	if err != nil {
		return storage.Lease{}, err
	}
	lease := storage.Lease{
		ID:         leaseID,
		UserID:     tenant.ID,
		PropertyID: property.ID,
		StartDate:  start,
		EndDate:    start.AddDate(0, term, 0),
		RentCents:  rent,
		Status:     storage.LeasePending,
		TermMonths: term,
	}
	if err := s.leases.CreateLease(ctx, lease); err != nil {
		return storage.Lease{}, fmt.Errorf("create lease: %w", err)
	}
	return lease, nil
}

func (s service) updateStatus(ctx context.Context, leaseID string, raw string) error {
	status := storage.LeaseStatus(strings.TrimSpace(raw))
	if !status.Valid() {
		return errInvalidStatus
	}
	err := s.leases.UpdateLeaseStatus(ctx, strings.TrimSpace(leaseID), status)
	if errors.Is(err, storage.ErrNotFound) {
		return errLeaseNotFound
	}
	if err != nil {
		return fmt.Errorf("update lease status: %w", err)
	}
	return nil
}
