package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/leasedesk/leasedesk/internal/services/web/storage"
)

const propertyColumns = `id, owner_id, name, address, city, state, zip, bedrooms, bathrooms,
    rent_cents, available, description, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateProperty inserts a property.
func (s *Store) CreateProperty(ctx context.Context, p storage.Property) error {
	if err := s.ready(); err != nil {
		return err
	}
	p.ID = strings.TrimSpace(p.ID)
	p.OwnerID = strings.TrimSpace(p.OwnerID)
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	if p.ID == "" {
		return fmt.Errorf("property id is required")
	}
	if p.OwnerID == "" {
		return fmt.Errorf("property owner id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("property name is required")
	}
	if p.Address == "" {
		return fmt.Errorf("property address is required")
	}
	if p.RentCents < 0 {
		return fmt.Errorf("property rent must not be negative")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO properties (`+propertyColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OwnerID, p.Name, p.Address,
		strings.TrimSpace(p.City), strings.TrimSpace(p.State), strings.TrimSpace(p.Zip),
		p.Bedrooms, p.Bathrooms, p.RentCents, boolToInt(p.Available),
		strings.TrimSpace(p.Description), toMillis(p.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create property %q: %w", p.ID, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("create property: %w", err)
	}
	return nil
}

// GetProperty fetches a property by id.
func (s *Store) GetProperty(ctx context.Context, propertyID string) (storage.Property, error) {
	if err := s.ready(); err != nil {
		return storage.Property{}, err
	}
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return storage.Property{}, storage.ErrNotFound
	}
	p, err := scanProperty(s.sqlDB.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, propertyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Property{}, storage.ErrNotFound
		}
		return storage.Property{}, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// ListAvailableProperties lists available properties matching query.
func (s *Store) ListAvailableProperties(ctx context.Context, query string) ([]storage.Property, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+propertyColumns+`
FROM properties
WHERE available = 1
  AND (lower(name) LIKE ?1 ESCAPE '\' OR lower(address) LIKE ?1 ESCAPE '\' OR lower(city) LIKE ?1 ESCAPE '\')
ORDER BY name, id`, pattern)
	if err != nil {
		return nil, fmt.Errorf("list available properties: %w", err)
	}
	return collectProperties(rows)
}

// ListPropertiesByOwner lists the owner's properties by name.
func (s *Store) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]storage.Property, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("owner id is required")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+propertyColumns+`
FROM properties
WHERE owner_id = ?
ORDER BY name, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner properties: %w", err)
	}
	return collectProperties(rows)
}

func collectProperties(rows *sql.Rows) ([]storage.Property, error) {
	defer rows.Close()
	var out []storage.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return out, nil
}

func scanProperty(row rowScanner) (storage.Property, error) {
	var (
		p         storage.Property
		available int
		createdAt int64
	)
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.State, &p.Zip,
		&p.Bedrooms, &p.Bathrooms, &p.RentCents, &available, &p.Description, &createdAt,
	); err != nil {
		return storage.Property{}, err
	}
	p.Available = available != 0
	p.CreatedAt = fromMillis(createdAt)
	return p, nil
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
