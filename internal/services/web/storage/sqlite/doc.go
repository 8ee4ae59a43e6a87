// Package sqlite provides the SQLite-backed leasedesk store.
//
// One database file holds accounts, sessions, properties and leases so the
// web service runs without any other infrastructure.
package sqlite
