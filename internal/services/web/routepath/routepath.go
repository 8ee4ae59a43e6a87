// Package routepath stores canonical HTTP paths for leasedesk pages and
// form actions.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root     = "/"
	Login    = "/login"
	Logout   = "/logout"
	Register = "/register"
	Health   = "/up"

	PropertyPrefix  = "/property/"
	PropertyPattern = PropertyPrefix + "{id}"
	Available       = "/available"
	Owner           = "/owner"
	Manager         = "/manager"
	Tenant          = "/tenant"
	About           = "/about"

	StaticPrefix = "/static/"

	OwnerProperties           = "/owner/properties"
	ManagerLeases             = "/manager/leases"
	ManagerLeasesPrefix       = "/manager/leases/"
	ManagerLeaseStatusPattern = ManagerLeasesPrefix + "{leaseID}/status"

	AvailableQueryKey     = "q"
	RegistrationQueryKey  = "registration"
	RegistrationSucceeded = "success"
)

// Property returns the property detail page for id.
func Property(id string) string {
	return PropertyPrefix + escapeSegment(id)
}

// AvailableSearch returns the available-properties page filtered by query.
func AvailableSearch(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return Available
	}
	values := url.Values{}
	values.Set(AvailableQueryKey, query)
	return Available + "?" + values.Encode()
}

// LoginAfterRegistration returns the login page with the registration notice.
func LoginAfterRegistration() string {
	values := url.Values{}
	values.Set(RegistrationQueryKey, RegistrationSucceeded)
	return Login + "?" + values.Encode()
}

// ManagerLeaseStatus returns the lease status update action for leaseID.
func ManagerLeaseStatus(leaseID string) string {
	return ManagerLeasesPrefix + escapeSegment(leaseID) + "/status"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
