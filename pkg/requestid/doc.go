// Package requestid assigns every request an id, echoes it in the
// X-Request-ID response header and exposes it to loggers and error pages.
//
// Incoming ids are reused when they are at most 128 characters of
// [a-zA-Z0-9_-]; anything else is replaced by a fresh UUID.
package requestid
