package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	newPost := func(target string, headers map[string]string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return req
	}

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "matching origin",
			req:  newPost("http://leasedesk.test/manager/leases", map[string]string{"Origin": "http://leasedesk.test"}),
			want: true,
		},
		{
			name: "matching referer when origin is absent",
			req:  newPost("http://leasedesk.test/manager/leases", map[string]string{"Referer": "http://leasedesk.test/manager"}),
			want: true,
		},
		{
			name: "explicit default port",
			req:  newPost("http://leasedesk.test/owner/properties", map[string]string{"Origin": "http://leasedesk.test:80"}),
			want: true,
		},
		{
			name: "foreign host",
			req:  newPost("http://leasedesk.test/owner/properties", map[string]string{"Origin": "http://evil.test"}),
			want: false,
		},
		{
			name: "port mismatch",
			req:  newPost("http://leasedesk.test/owner/properties", map[string]string{"Origin": "http://leasedesk.test:8080"}),
			want: false,
		},
		{
			name: "no proof headers",
			req:  newPost("http://leasedesk.test/owner/properties", nil),
			want: false,
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: newPost("https://leasedesk.test/manager/leases", map[string]string{
				"Origin":            "http://leasedesk.test",
				"X-Forwarded-Proto": "http",
			}),
			want: false,
		},
		{
			name: "trusted forwarded proto is used",
			req: newPost("https://leasedesk.test/manager/leases", map[string]string{
				"Origin":            "http://leasedesk.test",
				"X-Forwarded-Proto": "http",
			}),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
		{
			name: "nil request",
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.policy.HasSameOriginProof(tc.req); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	if (SchemePolicy{}).IsHTTPS(plain) {
		t.Fatal("plain request reported https")
	}

	withTLS := httptest.NewRequest(http.MethodGet, "/", nil)
	withTLS.TLS = &tls.ConnectionState{}
	if !(SchemePolicy{}).IsHTTPS(withTLS) {
		t.Fatal("TLS request not reported as https")
	}

	forwarded := httptest.NewRequest(http.MethodGet, "/", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "https")
	if (SchemePolicy{}).IsHTTPS(forwarded) {
		t.Fatal("untrusted forwarded proto reported https")
	}
	if !(SchemePolicy{TrustForwardedProto: true}).IsHTTPS(forwarded) {
		t.Fatal("trusted forwarded proto not reported as https")
	}

	if (SchemePolicy{}).IsHTTPS(nil) {
		t.Fatal("nil request reported https")
	}
}
