package middleware

import (
	"net"
	"net/http"
	"strings"
)

// HSTS instructs browsers to require HTTPS for one year, subdomains included.
func HSTS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// SecureCookies rewrites outgoing Set-Cookie headers so every cookie carries
// Secure, HttpOnly, and a SameSite attribute. Cookies that already declare an
// attribute keep their value; only missing attributes are added.
func SecureCookies(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&secureCookieWriter{ResponseWriter: w}, r)
	})
}

type secureCookieWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *secureCookieWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// WriteHeader hardens any Set-Cookie headers before the header block is flushed.
func (w *secureCookieWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	header := w.ResponseWriter.Header()
	if cookies := header["Set-Cookie"]; len(cookies) > 0 {
		header.Del("Set-Cookie")
		for _, cookie := range cookies {
			header.Add("Set-Cookie", hardenCookie(cookie))
		}
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

// hardenCookie appends Secure, HttpOnly, and SameSite=Lax to a serialized
// cookie unless the cookie already sets them. Lax matches the session cookie
// issued at login.
func hardenCookie(cookie string) string {
	parts := strings.Split(cookie, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	missing := map[string]string{
		"secure":   "Secure",
		"httponly": "HttpOnly",
		"samesite": "SameSite=Lax",
	}
	for _, p := range parts {
		key := strings.ToLower(p)
		if idx := strings.Index(key, "="); idx != -1 {
			key = key[:idx]
		}
		delete(missing, key)
	}

	for _, attr := range []string{"secure", "httponly", "samesite"} {
		if v, ok := missing[attr]; ok {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, "; ")
}

// IsHostAllowed reports whether host matches the allowed hosts list, ignoring
// port, case, and IPv6 brackets. An empty list allows every host. Used by the
// HTTP-to-HTTPS redirect server to refuse poisoned Host headers.
func IsHostAllowed(host string, allowedHosts []string) bool {
	if len(allowedHosts) == 0 {
		return true
	}

	normalized := normalizeHost(host)
	for _, allowed := range allowedHosts {
		if normalized == normalizeHost(allowed) {
			return true
		}
	}

	return false
}

// normalizeHost lowercases a host and strips any port and IPv6 brackets,
// so "[::1]:8080", "[::1]", and "::1" all compare equal.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))

	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}
