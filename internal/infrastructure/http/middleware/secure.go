package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureOptions returns hardened header options. Development mode relaxes
// checks that break plain-HTTP local testing.
func SecureOptions(isDevelopment bool) secure.Options {
	return secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		IsDevelopment:         isDevelopment,
	}
}

// NewSecure builds the secure-headers middleware.
func NewSecure(opts secure.Options) func(next http.Handler) http.Handler {
	s := secure.New(opts)
	return s.Handler
}
