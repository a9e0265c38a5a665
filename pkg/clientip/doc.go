// Package clientip resolves the originating client address behind CDNs and
// reverse proxies. It is used as the rate limiting key for signup attempts.
package clientip
