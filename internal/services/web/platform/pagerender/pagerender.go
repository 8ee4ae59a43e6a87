// Package pagerender centralizes full-page rendering for web modules.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/leasedesk/leasedesk/internal/services/web/module"
	flashnotice "github.com/leasedesk/leasedesk/internal/services/web/platform/flash"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/httpx"
	webi18n "github.com/leasedesk/leasedesk/internal/services/web/platform/i18n"
	"github.com/leasedesk/leasedesk/internal/services/web/platform/requestmeta"
	webtemplates "github.com/leasedesk/leasedesk/internal/services/web/templates"
)

// Page describes a module page response.
type Page struct {
	// TitleKey names the catalog message used as the document title.
	// Title, when set, is used verbatim instead.
	TitleKey   string
	Title      string
	StatusCode int
	Body       templ.Component
}

// Shell carries the per-request state the page chrome needs.
type Shell struct {
	Viewer module.Viewer
	Policy requestmeta.SchemePolicy
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the application layout. Nothing is written
// when rendering fails, so callers can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, shell Shell, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	ctx := webtemplates.WithLocalizer(httpx.RequestContext(r), loc)
	title := strings.TrimSpace(page.Title)
	if title == "" && page.TitleKey != "" {
		title = loc.Sprintf(page.TitleKey)
	}

	layout := webtemplates.Layout(webtemplates.LayoutData{
		Title:  title,
		Lang:   lang,
		Chrome: chrome(shell.Viewer),
		Toast:  resolveFlashToast(w, r, shell.Policy, loc),
	})
	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func chrome(viewer module.Viewer) webtemplates.Chrome {
	if !viewer.SignedIn() {
		return webtemplates.Chrome{}
	}
	out := webtemplates.Chrome{Username: viewer.Username, SignedIn: true}
	if viewer.Role != "" {
		out.RoleKey = "role." + string(viewer.Role)
	}
	return out
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc webtemplates.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
