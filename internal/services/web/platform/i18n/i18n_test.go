package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "query", target: "/?lang=pt-BR", want: language.BrazilianPortuguese, wantPersist: true},
		{name: "query base language", target: "/?lang=pt", want: language.BrazilianPortuguese, wantPersist: true},
		{name: "query wins over cookie", target: "/?lang=en-US", cookie: "pt-BR", want: language.AmericanEnglish, wantPersist: true},
		{name: "cookie", target: "/", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "invalid query falls back to cookie", target: "/?lang=%21%21", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9,en;q=0.5", want: language.BrazilianPortuguese},
		{name: "accept language english variant", target: "/", accept: "en-GB", want: language.AmericanEnglish},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want {
				t.Fatalf("ResolveTag() = %v, want %v", got, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	if got, _ := ResolveTag(nil); got != Default() {
		t.Fatalf("ResolveTag(nil) = %v, want %v", got, Default())
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	_, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want %q", lang, "pt-BR")
	}
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != LangCookieName || cookie.Value != "pt-BR" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}

	rr = httptest.NewRecorder()
	ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want empty", got)
	}
}

func TestCatalogsTranslateNavigation(t *testing.T) {
	t.Parallel()

	if got := Printer(language.AmericanEnglish).Sprintf("nav.available"); got != "Available homes" {
		t.Fatalf("en nav.available = %q", got)
	}
	if got := Printer(language.BrazilianPortuguese).Sprintf("nav.available"); got != "Imóveis disponíveis" {
		t.Fatalf("pt-BR nav.available = %q", got)
	}
}

func TestCatalogsDeclareSameKeys(t *testing.T) {
	t.Parallel()

	for _, key := range catalogKeys() {
		en := Printer(language.AmericanEnglish).Sprintf(key)
		pt := Printer(language.BrazilianPortuguese).Sprintf(key)
		if en == key {
			t.Fatalf("key %q missing from en catalog", key)
		}
		if pt == key {
			t.Fatalf("key %q missing from pt-BR catalog", key)
		}
	}
}
