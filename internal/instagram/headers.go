package instagram

import (
	"fmt"
	"net/http"
)

// Headers maps canonical header names to a single value.
type Headers map[string]string

// Clone returns a copy of h with every key canonicalised.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for k, v := range h {
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}

// Get returns the value of the header `name`, matched case-insensitively.
func (h Headers) Get(name string) string {
	v, ok := h[http.CanonicalHeaderKey(name)]
	if ok {
		return v
	}
	for k, v := range h {
		if http.CanonicalHeaderKey(k) == http.CanonicalHeaderKey(name) {
			return v
		}
	}
	return ""
}

// Overlay returns a copy of h with every field of top written over it,
// fields of top win on collision.
func (h Headers) Overlay(top Headers) Headers {
	out := h.Clone()
	for k, v := range top {
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}

// DefaultHeaders are the headers a desktop browser sends to the web api.
func DefaultHeaders() Headers {
	return Headers{
		"User-Agent":       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
		"Accept":           "*/*",
		"Accept-Language":  "en-US,en;q=0.9",
		"Content-Type":     "application/x-www-form-urlencoded",
		"Origin":           "https://www.instagram.com",
		"X-Instagram-Ajax": "1",
		"X-Requested-With": "XMLHttpRequest",
	}
}

// CookieHeader renders the session cookie in mid, csrftoken, sessionid order.
func CookieHeader(tokens Tokens) string {
	return fmt.Sprintf(
		"%s=%s; %s=%s; %s=%s;",
		cookieMid, tokens.Mid,
		cookieCSRF, tokens.CSRF,
		cookieSessionID, tokens.SessionID,
	)
}

// AuthHeaders overlays the anti-forgery, cookie and referer headers derived
// from tokens onto a copy of defaults. It does not modify defaults.
func AuthHeaders(defaults Headers, tokens Tokens) Headers {
	return defaults.Overlay(Headers{
		"X-CSRFToken": tokens.CSRF,
		"Cookie":      CookieHeader(tokens),
		"Referer":     WebRoot,
	})
}
