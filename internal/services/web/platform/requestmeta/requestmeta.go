// Package requestmeta resolves request scheme and origin facts used by cookie
// and form handling.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only consulted when TrustForwardedProto is set, which
// should be the case only behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// origin is a normalized scheme, host and port triple.
type origin struct {
	scheme string
	host   string
	port   string
}

// IsHTTPS reports whether r should be treated as HTTPS.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.scheme(r) == "https"
}

// HasSameOriginProof reports whether the Origin header, or the Referer when
// Origin is absent, names the same origin as r.
func (p SchemePolicy) HasSameOriginProof(r *http.Request) bool {
	if r == nil {
		return false
	}
	self := p.requestOrigin(r)
	if self.host == "" {
		return false
	}
	if raw := strings.TrimSpace(r.Header.Get("Origin")); raw != "" {
		return sameOrigin(raw, self)
	}
	if raw := strings.TrimSpace(r.Header.Get("Referer")); raw != "" {
		return sameOrigin(raw, self)
	}
	return false
}

func (p SchemePolicy) requestOrigin(r *http.Request) origin {
	scheme := p.scheme(r)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func (p SchemePolicy) scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")))
		if forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		scheme := strings.ToLower(r.URL.Scheme)
		if scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func sameOrigin(raw string, self origin) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme == "" || scheme != self.scheme {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" || host != self.host {
		return false
	}
	port := parsed.Port()
	if port == "" {
		port = defaultPort(scheme)
	}
	return port != "" && port == self.port
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
