package i18n

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enMessages = map[string]string{
	"app.name":             "LeaseDesk",
	"app.meta_description": "Find a home, track your lease and manage rental properties.",

	"nav.home":         "Home",
	"nav.available":    "Available homes",
	"nav.owner":        "Owners",
	"nav.manager":      "Managers",
	"nav.tenant":       "Tenants",
	"nav.about":        "About us",
	"nav.login":        "Sign in",
	"nav.register":     "Create account",
	"nav.signed_in_as": "Signed in as %s",
	"nav.logout":       "Sign out",

	"role.owner":   "Owner",
	"role.manager": "Manager",
	"role.tenant":  "Tenant",

	"title.home":      "Home",
	"title.login":     "Sign in",
	"title.register":  "Create account",
	"title.available": "Available homes",
	"title.owner":     "Owner dashboard",
	"title.manager":   "Manager dashboard",
	"title.tenant":    "My lease",
	"title.about":     "About us",

	"auth.error.invalid_credentials": "Username or password is incorrect.",
	"auth.error.username_invalid":    "Usernames are 3 to 64 characters without spaces.",
	"auth.error.password_too_short":  "Passwords need at least 8 characters.",
	"auth.error.password_too_long":   "Passwords can be at most 72 bytes.",
	"auth.error.password_mismatch":   "The passwords do not match.",
	"auth.error.role_invalid":        "Pick owner, manager or tenant.",
	"auth.error.username_taken":      "That username is already taken.",

	"home.heading":        "Renting made simple",
	"home.tagline":        "Browse available homes, sign leases and keep track of rent in one place.",
	"home.welcome_back":   "Welcome back, %s.",
	"home.open_dashboard": "Open my dashboard",
	"home.browse":         "Browse homes",
	"home.register":       "Create an account",

	"about.heading":  "About LeaseDesk",
	"about.body":     "LeaseDesk connects the people behind every rental.",
	"about.owners":   "Owners list properties and follow their rent income.",
	"about.managers": "Managers sign tenants and keep leases up to date.",
	"about.tenants":  "Tenants find homes and see their lease at a glance.",

	"error.not_found.title": "Page not found",
	"error.not_found.body":  "We could not find what you were looking for.",
	"error.forbidden.title": "Access denied",
	"error.forbidden.body":  "Your account cannot do that.",
	"error.server.title":    "Something went wrong",
	"error.server.body":     "We hit a problem loading this page. Try again in a moment.",
	"error.back_home":       "Back to home",
	"form.error.generic":    "We could not save your changes. Try again.",

	"login.heading":    "Sign in",
	"login.registered": "Your account is ready. Sign in to continue.",
	"login.username":   "Username",
	"login.password":   "Password",
	"login.submit":     "Sign in",
	"login.no_account": "New here?",

	"register.heading":  "Create your account",
	"register.username": "Username",
	"register.password": "Password",
	"register.confirm":  "Confirm password",
	"register.role":     "I am a",
	"register.submit":   "Create account",

	"property.back":                   "Back to available homes",
	"property.bedrooms":               "%d bedrooms",
	"property.bathrooms":              "%d bathrooms",
	"property.rent":                   "%s per month",
	"property.available":              "Available",
	"property.leased":                 "Leased",
	"property.field.name":             "Name",
	"property.field.address":          "Street address",
	"property.field.city":             "City",
	"property.field.state":            "State",
	"property.field.zip":              "ZIP code",
	"property.field.bedrooms":         "Bedrooms",
	"property.field.bathrooms":        "Bathrooms",
	"property.field.rent":             "Monthly rent",
	"property.field.description":      "Description",
	"property.error.name_required":    "Give the property a name.",
	"property.error.address_required": "Enter the street address.",
	"property.error.invalid_rooms":    "Bedrooms and bathrooms must be whole numbers of zero or more.",
	"property.error.invalid_rent":     "Enter the rent as an amount like 1250 or 1250.50.",

	"available.heading":       "Available homes",
	"available.search_label":  "Search by name, address or city",
	"available.search_submit": "Search",
	"available.no_match":      "No available homes match %q.",
	"available.empty":         "No homes are available right now.",

	"owner.heading":        "Your properties",
	"owner.rent_total":     "Monthly rent from active leases",
	"owner.property_count": "Properties",
	"owner.properties":     "Listed properties",
	"owner.empty":          "You have not listed a property yet.",
	"owner.add_property":   "List a property",
	"owner.submit":         "Add property",

	"manager.heading":       "Leases",
	"manager.empty":         "There are no leases yet.",
	"manager.new_lease":     "New lease",
	"manager.submit":        "Create lease",
	"manager.update_status": "Update",

	"lease.field.tenant":   "Tenant username",
	"lease.field.property": "Property",
	"lease.field.start":    "Start date",
	"lease.field.term":     "Term (months)",
	"lease.field.rent":     "Monthly rent",
	"lease.col.tenant":     "Tenant",
	"lease.col.property":   "Property",
	"lease.col.start":      "Starts",
	"lease.col.end":        "Ends",
	"lease.col.rent":       "Rent",
	"lease.col.status":     "Status",
	"lease.col.update":     "Change status",

	"lease.status.pending":  "Pending",
	"lease.status.active":   "Active",
	"lease.status.ended":    "Ended",
	"lease.status.rejected": "Rejected",

	"lease.error.tenant_not_found":   "No tenant has that username.",
	"lease.error.property_required":  "Choose a property.",
	"lease.error.property_not_found": "That property no longer exists.",
	"lease.error.invalid_start":      "Enter the start date as YYYY-MM-DD.",
	"lease.error.invalid_term":       "The term must be between 1 and 120 months.",
	"lease.error.invalid_rent":       "Enter the rent as an amount like 1250 or 1250.50.",
	"lease.error.invalid_status":     "That lease status is not recognized.",

	"tenant.heading":  "My lease",
	"tenant.no_lease": "You do not have a lease on file yet.",

	"prompt.heading":    "Sign in required",
	"prompt.sign_in":    "Sign in as %s to see this page.",
	"prompt.wrong_role": "This page is only for the %s role.",

	"notice.property_created":     "Property listed.",
	"notice.lease_created":        "Lease created.",
	"notice.lease_status_updated": "Lease status updated.",
	"notice.signed_out":           "You have been signed out.",
	"notice.signed_in":            "Welcome back.",
}

func init() {
	for key, value := range enMessages {
		_ = message.SetString(language.AmericanEnglish, key, value)
	}
}

// catalogKeys returns every message key in sorted order.
func catalogKeys() []string {
	keys := make([]string, 0, len(enMessages))
	for key := range enMessages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
