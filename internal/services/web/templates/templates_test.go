package templates

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type stubLocalizer map[string]string

func (s stubLocalizer) Sprintf(key message.Reference, args ...any) string {
	k, _ := key.(string)
	format, ok := s[k]
	if !ok {
		format = k
	}
	return fmt.Sprintf(format, args...)
}

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(context.Background(), "nav.home"); got != "nav.home" {
		t.Fatalf("T() = %q, want %q", got, "nav.home")
	}
	ctx := WithLocalizer(context.Background(), stubLocalizer{"nav.home": "Home"})
	if got := T(ctx, "nav.home"); got != "Home" {
		t.Fatalf("T() = %q, want %q", got, "Home")
	}
	if LocalizerFrom(nil) != nil {
		t.Fatal("LocalizerFrom(nil) should be nil")
	}
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	ctx := WithLocalizer(context.Background(), stubLocalizer{
		"app.name":         "LeaseDesk",
		"nav.signed_in_as": "Signed in as %s",
		"role.owner":       "Owner",
		"nav.logout":       "Sign out",
		"nav.available":    "Available homes",
	})
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>child</p>")
		return err
	})
	got := render(t, templ.WithChildren(ctx, body), Layout(LayoutData{
		Title:  "Owner",
		Lang:   "en-US",
		Chrome: Chrome{Username: "<ann>", RoleKey: "role.owner", SignedIn: true},
		Toast:  &Toast{Kind: "success", Message: "Saved"},
	}))

	for _, want := range []string{
		`<html lang="en-US">`,
		"<title>Owner | LeaseDesk</title>",
		"<p>child</p>",
		"Signed in as &lt;ann&gt; (Owner)",
		`class="toast toast-success"`,
		`href="/available"`,
		`action="/logout"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("layout missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<ann>") {
		t.Fatal("username was not escaped")
	}
}

func TestLayoutSignedOutShowsLoginLinks(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), Layout(LayoutData{}))
	if !strings.Contains(got, `href="/login"`) || !strings.Contains(got, `href="/register"`) {
		t.Fatalf("signed-out layout missing account links:\n%s", got)
	}
	if strings.Contains(got, `action="/logout"`) {
		t.Fatal("signed-out layout rendered logout form")
	}
}

func TestLoginPage(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), LoginPage(LoginData{
		Username:   "ann",
		ErrorKey:   "auth.error.invalid_credentials",
		Registered: true,
	}))
	for _, want := range []string{
		`action="/login"`,
		`value="ann"`,
		"auth.error.invalid_credentials",
		"login.registered",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("login page missing %q in:\n%s", want, got)
		}
	}
}

func TestRegisterPageSelectsRole(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), RegisterPage(RegisterData{
		Role: "manager",
		Roles: []RoleOption{
			{Value: "owner", Key: "role.owner"},
			{Value: "manager", Key: "role.manager"},
		},
	}))
	if !strings.Contains(got, `<option value="manager" selected="selected">`) {
		t.Fatalf("register page did not select role:\n%s", got)
	}
	if strings.Contains(got, `<option value="owner" selected="selected">`) {
		t.Fatal("register page selected the wrong role")
	}
}

func TestAvailablePageEmptyStates(t *testing.T) {
	t.Parallel()

	ctx := WithLocalizer(context.Background(), stubLocalizer{"available.no_match": "Nothing matches %q"})
	got := render(t, ctx, AvailablePage(AvailableData{Query: "loft"}))
	if !strings.Contains(got, "Nothing matches &#34;loft&#34;") {
		t.Fatalf("available page missing no-match copy:\n%s", got)
	}

	got = render(t, context.Background(), AvailablePage(AvailableData{Properties: []PropertyCard{
		{Href: "/property/p-1", Name: "Elm House", Address: "1 Elm St", Location: "Austin, TX", Available: true},
	}}))
	for _, want := range []string{`href="/property/p-1"`, "Elm House", "1 Elm St, Austin, TX", "property.available"} {
		if !strings.Contains(got, want) {
			t.Fatalf("available page missing %q in:\n%s", want, got)
		}
	}
}

func TestManagerPageMarksCurrentStatus(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), ManagerPage(ManagerData{
		Leases: []LeaseRow{{
			ID:           "lea-1",
			Tenant:       "tia",
			PropertyName: "Elm House",
			Status:       "active",
			StatusAction: "/manager/leases/lea-1/status",
		}},
		Statuses: []string{"pending", "active", "ended"},
	}))
	for _, want := range []string{
		`action="/manager/leases/lea-1/status"`,
		`<option value="active" selected="selected">`,
		`action="/manager/leases"`,
		"lease.status.active",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("manager page missing %q in:\n%s", want, got)
		}
	}
}

func TestTenantPageWithoutLease(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), TenantPage(TenantData{}))
	if !strings.Contains(got, "tenant.no_lease") {
		t.Fatalf("tenant page missing empty state:\n%s", got)
	}
}

func TestSignInPrompt(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), SignInPrompt("role.owner", false))
	if !strings.Contains(got, `href="/login"`) {
		t.Fatalf("prompt missing login link:\n%s", got)
	}
	got = render(t, context.Background(), SignInPrompt("role.owner", true))
	if !strings.Contains(got, "prompt.wrong_role") || strings.Contains(got, `href="/login" class="button"`) {
		t.Fatalf("signed-in prompt = %s", got)
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{status: http.StatusNotFound, want: "error.not_found.body"},
		{status: http.StatusForbidden, want: "error.forbidden.body"},
		{status: http.StatusInternalServerError, want: "error.server.body"},
		{status: http.StatusBadGateway, want: "error.server.body"},
	}
	for _, tc := range tests {
		got := render(t, context.Background(), ErrorState(tc.status))
		if !strings.Contains(got, tc.want) {
			t.Fatalf("ErrorState(%d) missing %q in:\n%s", tc.status, tc.want, got)
		}
	}
}

func TestMoney(t *testing.T) {
	t.Parallel()

	if got := Money(context.Background(), 125050); got != "$1250.50" {
		t.Fatalf("Money() = %q, want %q", got, "$1250.50")
	}
	if got := Money(context.Background(), -5); got != "-$0.05" {
		t.Fatalf("Money(-5) = %q, want %q", got, "-$0.05")
	}
	en := WithLocalizer(context.Background(), message.NewPrinter(language.AmericanEnglish))
	if got := Money(en, 125050); got != "$1,250.50" {
		t.Fatalf("Money(en) = %q, want %q", got, "$1,250.50")
	}
}
