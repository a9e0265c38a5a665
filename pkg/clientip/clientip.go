package clientip

import (
	"net"
	"net/http"
	"strings"
)

// singleValueHeaders are set by CDNs and load balancers to the original client address.
var singleValueHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP"}

// GetIP returns the client address in canonical form, consulting proxy
// headers in this order: CF-Connecting-IP, DO-Connecting-IP, the first valid
// X-Forwarded-For entry, X-Real-IP, and finally RemoteAddr. Unparseable
// values are skipped; an empty string means nothing usable was found.
func GetIP(r *http.Request) string {
	for _, h := range singleValueHeaders {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	for candidate := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := parseIP(candidate); ip != "" {
			return ip
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
