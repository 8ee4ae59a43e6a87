package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/leasedesk/leasedesk/internal/services/web/storage"
)

const leaseColumns = `id, user_id, property_id, start_date, end_date, rent_cents, status, term_months`

// ListLeases lists every lease, newest start date first.
func (s *Store) ListLeases(ctx context.Context) ([]storage.Lease, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+leaseColumns+` FROM leases ORDER BY start_date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()

	var out []storage.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leases: %w", err)
	}
	return out, nil
}

// GetLease fetches a lease by id.
func (s *Store) GetLease(ctx context.Context, leaseID string) (storage.Lease, error) {
	if err := s.ready(); err != nil {
		return storage.Lease{}, err
	}
	leaseID = strings.TrimSpace(leaseID)
	if leaseID == "" {
		return storage.Lease{}, storage.ErrNotFound
	}
	return getLease(s.sqlDB.QueryRowContext(ctx,
		`SELECT `+leaseColumns+` FROM leases WHERE id = ?`, leaseID))
}

// GetLeaseByUser fetches the user's most recent lease.
func (s *Store) GetLeaseByUser(ctx context.Context, userID string) (storage.Lease, error) {
	if err := s.ready(); err != nil {
		return storage.Lease{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return storage.Lease{}, storage.ErrNotFound
	}
	return getLease(s.sqlDB.QueryRowContext(ctx, `
SELECT `+leaseColumns+`
FROM leases WHERE user_id = ?
ORDER BY start_date DESC, id
LIMIT 1`, userID))
}

// CreateLease inserts a lease.
func (s *Store) CreateLease(ctx context.Context, l storage.Lease) error {
	if err := s.ready(); err != nil {
		return err
	}
	l.ID = strings.TrimSpace(l.ID)
	l.UserID = strings.TrimSpace(l.UserID)
	l.PropertyID = strings.TrimSpace(l.PropertyID)
	if l.ID == "" {
		return fmt.Errorf("lease id is required")
	}
	if l.UserID == "" {
		return fmt.Errorf("lease user id is required")
	}
	if l.PropertyID == "" {
		return fmt.Errorf("lease property id is required")
	}
	if l.Status == "" {
		l.Status = storage.LeasePending
	}
	if !l.Status.Valid() {
		return fmt.Errorf("lease status %q is invalid", l.Status)
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return fmt.Errorf("lease start and end dates are required")
	}
	if l.EndDate.Before(l.StartDate) {
		return fmt.Errorf("lease end date is before start date")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO leases (`+leaseColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.PropertyID, toMillis(l.StartDate), toMillis(l.EndDate),
		l.RentCents, string(l.Status), l.TermMonths,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create lease %q: %w", l.ID, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("create lease: %w", err)
	}
	return nil
}

// UpdateLeaseStatus sets the status of a lease.
func (s *Store) UpdateLeaseStatus(ctx context.Context, leaseID string, status storage.LeaseStatus) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("lease status %q is invalid", status)
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE leases SET status = ? WHERE id = ?`, string(status), strings.TrimSpace(leaseID))
	if err != nil {
		return fmt.Errorf("update lease status: %w", err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update lease status: %w", err)
	}
	if updated == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// OwnerRentTotal sums active lease rent on the owner's properties.
func (s *Store) OwnerRentTotal(ctx context.Context, ownerID string) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var total int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT COALESCE(SUM(l.rent_cents), 0)
FROM leases l
JOIN properties p ON p.id = l.property_id
WHERE p.owner_id = ? AND l.status = ?`,
		strings.TrimSpace(ownerID), string(storage.LeaseActive),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("owner rent total: %w", err)
	}
	return total, nil
}

func getLease(row *sql.Row) (storage.Lease, error) {
	l, err := scanLease(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Lease{}, storage.ErrNotFound
		}
		return storage.Lease{}, fmt.Errorf("get lease: %w", err)
	}
	return l, nil
}

func scanLease(row rowScanner) (storage.Lease, error) {
	var (
		l         storage.Lease
		startDate int64
		endDate   int64
		status    string
	)
	if err := row.Scan(&l.ID, &l.UserID, &l.PropertyID, &startDate, &endDate, &l.RentCents, &status, &l.TermMonths); err != nil {
		return storage.Lease{}, err
	}
	l.StartDate = fromMillis(startDate)
	l.EndDate = fromMillis(endDate)
	l.Status = storage.LeaseStatus(status)
	return l, nil
}
