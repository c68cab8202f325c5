package utils

import (
	"net"
	"net/http"
	"slices"
	"strings"
)

// ExtractPathValue retrieves a path parameter and removes file extensions like ".json".
func ExtractPathValue(r *http.Request, name string, extensions ...string) string {
	raw := r.PathValue(name)
	for _, ext := range extensions {
		if trimmed := strings.TrimSuffix(raw, ext); trimmed != raw {
			return trimmed
		}
	}
	return raw
}

// ClientIP returns the host part of the connection's remote address. The first
// X-Forwarded-For entry is used instead only when the connection comes from one
// of trustedProxies.
func ClientIP(r *http.Request, trustedProxies ...string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, host) {
		return host
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return host
}
