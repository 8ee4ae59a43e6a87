// Package templates renders leasedesk pages as templ components.
//
// Components read their localizer from the render context (WithLocalizer)
// and never touch storage types; handlers map records onto the view structs
// declared here.
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

type localizerKey struct{}

// WithLocalizer attaches loc to ctx for components rendered under it.
func WithLocalizer(ctx context.Context, loc Localizer) context.Context {
	return context.WithValue(ctx, localizerKey{}, loc)
}

// LocalizerFrom returns the localizer attached to ctx, if any.
func LocalizerFrom(ctx context.Context) Localizer {
	if ctx == nil {
		return nil
	}
	loc, _ := ctx.Value(localizerKey{}).(Localizer)
	return loc
}

// T translates key with the context localizer, falling back to the key.
func T(ctx context.Context, key string, args ...any) string {
	loc := LocalizerFrom(ctx)
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// Money formats cents as a dollar amount using the context localizer's
// number grouping, e.g. "$1,250.00" or "$1.250,00".
func Money(ctx context.Context, cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	loc := LocalizerFrom(ctx)
	if loc == nil {
		return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
	}
	return sign + "$" + loc.Sprintf("%.2f", float64(cents)/100)
}

// htmlWriter writes markup and remembers the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.raw(" " + attrs[i] + `="`)
		h.text(attrs[i+1])
		h.raw(`"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// elem writes <tag attrs...>text</tag>.
func (h *htmlWriter) elem(tag string, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) link(href string, text string, attrs ...string) {
	h.elem("a", text, append([]string{"href", href}, attrs...)...)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
