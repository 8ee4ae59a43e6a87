package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"

	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	apperrors "github.com/leasedesk/leasedesk/internal/services/web/platform/errors"
	webi18n "github.com/leasedesk/leasedesk/internal/services/web/platform/i18n"
)

func TestWriteModuleErrorRendersAppErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/property/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"), module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<title>Page not found | LeaseDesk</title>") {
		t.Fatalf("body missing error page title:\n%s", body)
	}
	if !strings.Contains(body, `class="error-state"`) {
		t.Fatalf("body missing error state:\n%s", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForInputErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rr := httptest.NewRecorder()
	err := apperrors.EK(apperrors.KindConflict, "auth.error.username_taken", "username taken")
	WriteModuleError(rr, req, err, module.Dependencies{})
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusConflict)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "That username is already taken." {
		t.Fatalf("body = %q", got)
	}
}

func TestWriteAppErrorNormalizesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rr.Body.String(), "Something went wrong") {
		t.Fatalf("body missing server error copy:\n%s", rr.Body.String())
	}
}

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusForbidden:           true,
		http.StatusNotFound:            true,
		http.StatusConflict:            false,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	pt := webi18n.Printer(language.BrazilianPortuguese)
	if got := PublicMessage(pt, apperrors.EK(apperrors.KindInvalidInput, "auth.error.password_mismatch", "mismatch")); got != "As senhas não coincidem." {
		t.Fatalf("PublicMessage(keyed) = %q", got)
	}
	if got := PublicMessage(pt, errors.New("db down")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(untyped) = %q", got)
	}
	if got := PublicMessage(nil, apperrors.E(apperrors.KindInvalidInput, "bad")); got != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("PublicMessage(nil loc) = %q", got)
	}
	if got := PublicMessage(pt, nil); got != "" {
		t.Fatalf("PublicMessage(nil err) = %q, want empty", got)
	}
}
