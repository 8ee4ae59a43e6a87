// Package storage defines persistence contracts for accounts, sessions,
// properties and leases.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a unique key is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Role is the account role chosen at registration.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleTenant  Role = "tenant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleTenant:
		return true
	default:
		return false
	}
}

// User is a registered account.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
}

// Session is a server-side record backing a signed session token.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Property is a rentable unit.
type Property struct {
	ID          string
	OwnerID     string
	Name        string
	Address     string
	City        string
	State       string
	Zip         string
	Bedrooms    int
	Bathrooms   int
	RentCents   int64
	Available   bool
	Description string
	CreatedAt   time.Time
}

// LeaseStatus tracks a lease through its lifecycle.
type LeaseStatus string

const (
	LeasePending  LeaseStatus = "pending"
	LeaseActive   LeaseStatus = "active"
	LeaseEnded    LeaseStatus = "ended"
	LeaseRejected LeaseStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s LeaseStatus) Valid() bool {
	switch s {
	case LeasePending, LeaseActive, LeaseEnded, LeaseRejected:
		return true
	default:
		return false
	}
}

// Lease ties a tenant to a property for a term.
type Lease struct {
	ID         string
	UserID     string
	PropertyID string
	StartDate  time.Time
	EndDate    time.Time
	RentCents  int64
	Status     LeaseStatus
	TermMonths int
}

// UserStore persists accounts.
type UserStore interface {
	// CreateUser returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

// SessionStore persists session records.
type SessionStore interface {
	PutSession(ctx context.Context, s Session) error
	// GetSession returns ErrNotFound for missing or expired sessions.
	GetSession(ctx context.Context, sessionID string) (Session, error)
	// DeleteSession is idempotent.
	DeleteSession(ctx context.Context, sessionID string) error
}

// PropertyStore persists properties.
type PropertyStore interface {
	CreateProperty(ctx context.Context, p Property) error
	GetProperty(ctx context.Context, propertyID string) (Property, error)
	// ListAvailableProperties filters by a case-insensitive substring of
	// name, address or city. An empty query lists every available property.
	ListAvailableProperties(ctx context.Context, query string) ([]Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID string) ([]Property, error)
}

// LeaseStore persists leases.
type LeaseStore interface {
	ListLeases(ctx context.Context) ([]Lease, error)
	GetLease(ctx context.Context, leaseID string) (Lease, error)
	// GetLeaseByUser returns the user's lease with the latest start date.
	GetLeaseByUser(ctx context.Context, userID string) (Lease, error)
	CreateLease(ctx context.Context, l Lease) error
	// UpdateLeaseStatus returns ErrNotFound when no lease has leaseID.
	UpdateLeaseStatus(ctx context.Context, leaseID string, status LeaseStatus) error
	// OwnerRentTotal sums active lease rent across the owner's properties.
	OwnerRentTotal(ctx context.Context, ownerID string) (int64, error)
}

// Store is the full persistence surface of the web service.
type Store interface {
	UserStore
	SessionStore
	PropertyStore
	LeaseStore
	Close() error
}
