package properties

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leasedesk/leasedesk/internal/platform/id"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/money"
	"github.com/leasedesk/leasedesk/internal/services/web/storage"
)

var (
	errNameRequired    = apperrors.EK(apperrors.KindInvalidInput, "property.error.name_required", "property name is required")
	errAddressRequired = apperrors.EK(apperrors.KindInvalidInput, "property.error.address_required", "property address is required")
	errInvalidRooms    = apperrors.EK(apperrors.KindInvalidInput, "property.error.invalid_rooms", "bedrooms and bathrooms must be non-negative integers")
	errInvalidRent     = apperrors.EK(apperrors.KindInvalidInput, "property.error.invalid_rent", "rent must be a non-negative amount")
	errPropertyMissing = apperrors.EK(apperrors.KindNotFound, "error.not_found.body", "property not found")
)

// propertyInput is the owner-submitted create form.
type propertyInput struct {
	Name        string
	Address     string
	City        string
	State       string
	Zip         string
	Bedrooms    string
	Bathrooms   string
	Rent        string
	Description string
}

// ownerDashboard is the data behind the owner page.
type ownerDashboard struct {
	Properties     []storage.Property
	RentTotalCents int64
}

type service struct {
	properties storage.PropertyStore
	leases     storage.LeaseStore
}

func newService(properties storage.PropertyStore, leases storage.LeaseStore) service {
	return service{properties: properties, leases: leases}
}

func (s service) property(ctx context.Context, propertyID string) (storage.Property, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return storage.Property{}, errPropertyMissing
	}
	property, err := s.properties.GetProperty(ctx, propertyID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Property{}, errPropertyMissing
	}
	if err != nil {
		return storage.Property{}, fmt.Errorf("get property: %w", err)
	}
	return property, nil
}

func (s service) available(ctx context.Context, query string) ([]storage.Property, error) {
	list, err := s.properties.ListAvailableProperties(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("list available properties: %w", err)
	}
	return list, nil
}

func (s service) ownerDashboard(ctx context.Context, ownerID string) (ownerDashboard, error) {
	list, err := s.properties.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return ownerDashboard{}, fmt.Errorf("list owner properties: %w", err)
	}
	total, err := s.leases.OwnerRentTotal(ctx, ownerID)
	if err != nil {
		return ownerDashboard{}, fmt.Errorf("owner rent total: %w", err)
	}
	return ownerDashboard{Properties: list, RentTotalCents: total}, nil
}

// createProperty validates input and stores a new available property owned
// by ownerID.
func (s service) createProperty(ctx context.Context, ownerID string, input propertyInput) (storage.Property, error) {
	property, err := input.toProperty()
	if err != nil {
		return storage.Property{}, err
	}
	propertyID, err := id.NewPrefixed("prp")
	if err != nil {
		return storage.Property{}, err
	}
	property.ID = propertyID
	property.OwnerID = ownerID
	property.Available = true
	if err := s.properties.CreateProperty(ctx, property); err != nil {
		return storage.Property{}, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

func (in propertyInput) toProperty() (storage.Property, error) {
	if strings.TrimSpace(in.Name) == "" {
		return storage.Property{}, errNameRequired
	}
	if strings.TrimSpace(in.Address) == "" {
		return storage.Property{}, errAddressRequired
	}
	bedrooms, err := parseCount(in.Bedrooms)
	if err != nil {
		return storage.Property{}, errInvalidRooms
	}
	bathrooms, err := parseCount(in.Bathrooms)
	if err != nil {
		return storage.Property{}, errInvalidRooms
	}
	rent := int64(0)
	if strings.TrimSpace(in.Rent) != "" {
		rent, err = money.ParseCents(in.Rent)
		if err != nil {
			return storage.Property{}, errInvalidRent
		}
	}
	return storage.Property{
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Zip:         strings.TrimSpace(in.Zip),
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		RentCents:   rent,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

// parseCount parses an optional non-negative integer; blank is zero.
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("count %d is negative", value)
	}
	return value, nil
}
