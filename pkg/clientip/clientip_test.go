package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
		{
			name:       "cloudflare wins",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.5",
		},
		{
			name:       "digitalocean",
			headers:    map[string]string{"DO-Connecting-IP": "203.0.113.6"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.6",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.7, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.7",
		},
		{
			name:       "real ip",
			headers:    map[string]string{"X-Real-IP": " 198.51.100.8 "},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.8",
		},
		{
			name:       "invalid headers fall through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "999.1.1.1"},
			remoteAddr: "192.0.2.9:5555",
			want:       "192.0.2.9",
		},
		{
			name:       "ipv6 canonical form",
			headers:    map[string]string{"X-Real-IP": "2001:DB8:0:0:0:0:0:1"},
			remoteAddr: "10.0.0.1:80",
			want:       "2001:db8::1",
		},
		{name: "nothing usable", remoteAddr: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/signup", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		r.Header.Set("X-Real-IP", "198.51.100.99") // ignored after resolution
		got = clientip.FromRequest(r)
	}))

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	req.RemoteAddr = "192.0.2.44:1000"
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "192.0.2.44", got)

	direct := httptest.NewRequest(http.MethodPost, "/signup", nil)
	direct.RemoteAddr = "192.0.2.45:1000"
	assert.Equal(t, "192.0.2.45", clientip.FromRequest(direct))
}
