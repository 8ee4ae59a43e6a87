// Package route declares the page route table: which URL paths exist, which
// named route and view each one maps to, and whether navigating to it
// requires a signed-in session.
//
// Route names and views are typed constants so handlers, redirects and links
// refer to routes by a compile-time checked identifier instead of string
// literals. A Table is immutable; every adjustment returns a new Table.
package route

import (
	"github.com/leasedesk/leasedesk/internal/services/web/routepath"
)

// Name identifies a route. Names are unique within a Table.
type Name string

// View identifies the page a route renders.
type View string

// Route names. The mixed casing of Available and Tenant is part of the
// public naming and is kept as-is.
const (
	Home      Name = "home"
	Login     Name = "login"
	Logout    Name = "logout"
	Register  Name = "register"
	Property  Name = "property"
	Available Name = "Available"
	Owner     Name = "owner"
	Manager   Name = "manager"
	Tenant    Name = "Tenant"
	About     Name = "about"
)

// Views rendered by the default table.
const (
	HomeView      View = "HomeView"
	LoginView     View = "LoginView"
	LogoutView    View = "LogoutView"
	RegisterView  View = "RegisterView"
	PropertyView  View = "PropertyView"
	AvailableView View = "AvailableView"
	OwnerView     View = "OwnerView"
	ManagerView   View = "ManagerView"
	TenantView    View = "TenantView"
	AboutUsView   View = "AboutUsView"
)

// Route binds a path pattern to a named view.
//
// Path is either static ("/owner") or contains whole-segment parameters
// ("/property/{id}"). The zero RequiresAuth means the route is public.
type Route struct {
	Path         string
	Name         Name
	View         View
	RequiresAuth bool
}

// Public reports whether navigation never needs a session.
func (r Route) Public() bool {
	return !r.RequiresAuth
}

var defaultRoutes = []Route{
	{Path: routepath.Root, Name: Home, View: HomeView},
	{Path: routepath.Login, Name: Login, View: LoginView},
	{Path: routepath.Logout, Name: Logout, View: LogoutView},
	{Path: routepath.Register, Name: Register, View: RegisterView},
	{Path: routepath.PropertyPattern, Name: Property, View: PropertyView},
	{Path: routepath.Available, Name: Available, View: AvailableView},
	{Path: routepath.Owner, Name: Owner, View: OwnerView},
	{Path: routepath.Manager, Name: Manager, View: ManagerView},
	{Path: routepath.Tenant, Name: Tenant, View: TenantView},
	{Path: routepath.About, Name: About, View: AboutUsView},
}

var defaultTable = mustNew(defaultRoutes...)

// Default returns the application route table. Every route in it is public;
// protection is opted into per deployment with WithAccess.
func Default() Table {
	return defaultTable
}

func mustNew(routes ...Route) Table {
	table, err := New(routes...)
	if err != nil {
		panic(err)
	}
	return table
}
