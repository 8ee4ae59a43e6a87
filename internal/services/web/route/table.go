package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownRoute reports a lookup for a name the table does not declare.
var ErrUnknownRoute = errors.New("unknown route")

// Table is an ordered, immutable set of routes with unique names and
// non-overlapping paths.
type Table struct {
	routes   []Route
	patterns []pattern
	byName   map[Name]int
}

// Match is the result of resolving a path against a Table.
type Match struct {
	Route  Route
	Params map[string]string
	Query  url.Values
}

// Param returns the captured value of a path parameter.
func (m Match) Param(key string) string {
	return m.Params[key]
}

// New builds a table from routes in declaration order.
func New(routes ...Route) (Table, error) {
	table := Table{
		routes:   make([]Route, 0, len(routes)),
		patterns: make([]pattern, 0, len(routes)),
		byName:   make(map[Name]int, len(routes)),
	}
	for _, r := range routes {
		r.Name = Name(strings.TrimSpace(string(r.Name)))
		r.View = View(strings.TrimSpace(string(r.View)))
		if r.Name == "" {
			return Table{}, fmt.Errorf("route %q: name is required", r.Path)
		}
		if r.View == "" {
			return Table{}, fmt.Errorf("route %q: view is required", r.Name)
		}
		if _, ok := table.byName[r.Name]; ok {
			return Table{}, fmt.Errorf("route %q: duplicate name", r.Name)
		}
		p, err := parsePattern(r.Path)
		if err != nil {
			return Table{}, fmt.Errorf("route %q: %w", r.Name, err)
		}
		for idx, existing := range table.patterns {
			if existing.overlaps(p) {
				return Table{}, fmt.Errorf("route %q: path %q overlaps route %q path %q",
					r.Name, r.Path, table.routes[idx].Name, table.routes[idx].Path)
			}
		}
		r.Path = p.raw
		table.byName[r.Name] = len(table.routes)
		table.routes = append(table.routes, r)
		table.patterns = append(table.patterns, p)
	}
	return table, nil
}

// Routes returns a copy of the routes in declaration order.
func (t Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t Table) Len() int {
	return len(t.routes)
}

// Lookup returns the route declared under name.
func (t Table) Lookup(name Name) (Route, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[idx], true
}

// Match resolves an escaped request target, e.g. "/property/42?tab=photos",
// to a route. The query and fragment are not part of matching; the query is
// returned on the Match. An empty target resolves like "/", one trailing
// slash is ignored and static segments compare case-insensitively.
func (t Table) Match(target string) (Match, bool) {
	rawPath, rawQuery := splitTarget(target)
	segments, ok := pathSegments(rawPath)
	if !ok {
		return Match{}, false
	}
	for idx, p := range t.patterns {
		params, ok := p.match(segments)
		if !ok {
			continue
		}
		query, _ := url.ParseQuery(rawQuery)
		return Match{Route: t.routes[idx], Params: params, Query: query}, true
	}
	return Match{}, false
}

// URL builds the path for a named route, substituting params into its
// parameter segments.
func (t Table) URL(name Name, params map[string]string) (string, error) {
	idx, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownRoute, name)
	}
	path, err := t.patterns[idx].build(params)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}
	return path, nil
}

// MustURL is URL for names and params known to be valid.
func (t Table) MustURL(name Name, params map[string]string) string {
	path, err := t.URL(name, params)
	if err != nil {
		panic(err)
	}
	return path
}

// WithAccess returns a copy of the table with RequiresAuth overridden for
// every route named in policy. The login route cannot be protected: the
// guard redirects to it, so protecting it would never settle.
func (t Table) WithAccess(policy Policy) (Table, error) {
	routes := t.Routes()
	for name, access := range policy.Routes {
		idx, ok := t.byName[name]
		if !ok {
			return Table{}, fmt.Errorf("access policy: %w %q", ErrUnknownRoute, name)
		}
		if name == Login && access.RequiresAuth {
			return Table{}, fmt.Errorf("access policy: route %q must stay public", Login)
		}
		routes[idx].RequiresAuth = access.RequiresAuth
	}
	return New(routes...)
}

// Protected returns the names of routes that require a session, in
// declaration order.
func (t Table) Protected() []Name {
	var names []Name
	for _, r := range t.routes {
		if r.RequiresAuth {
			names = append(names, r.Name)
		}
	}
	return names
}

func splitTarget(target string) (string, string) {
	if idx := strings.IndexByte(target, '#'); idx >= 0 {
		target = target[:idx]
	}
	if idx := strings.IndexByte(target, '?'); idx >= 0 {
		return target[:idx], target[idx+1:]
	}
	return target, ""
}
