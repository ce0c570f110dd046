package instagram

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAuthHeaders(t *testing.T) {
	tokens := Tokens{CSRF: "c1", Mid: "m1", SessionID: "s1"}
	headers := AuthHeaders(Headers{"user-agent": "test"}, tokens)

	expected := Headers{
		"User-Agent":  "test",
		"X-Csrftoken": "c1",
		"Cookie":      "mid=m1; csrftoken=c1; sessionid=s1;",
		"Referer":     "https://www.instagram.com/",
	}
	if diff := cmp.Diff(expected, headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "c1", headers.Get("X-CSRFToken"))
}

func TestAuthHeadersBlankSession(t *testing.T) {
	headers := AuthHeaders(DefaultHeaders(), Tokens{CSRF: "c1", Mid: "m1"})
	require.Equal(t, "mid=m1; csrftoken=c1; sessionid=;", headers.Get("Cookie"))

	headers = AuthHeaders(DefaultHeaders(), Tokens{})
	require.Equal(t, "mid=; csrftoken=; sessionid=;", headers.Get("Cookie"))
	require.Equal(t, "", headers.Get("X-CSRFToken"))
}

func TestAuthHeadersPrecedence(t *testing.T) {
	defaults := Headers{
		"referer":     "https://example.com/",
		"x-csrftoken": "stale",
		"Accept":      "*/*",
	}
	headers := AuthHeaders(defaults, Tokens{CSRF: "fresh"})

	require.Equal(t, WebRoot, headers.Get("Referer"))
	require.Equal(t, "fresh", headers.Get("X-CSRFToken"))
	require.Equal(t, "*/*", headers.Get("Accept"))
	require.Len(t, headers, 4)

	// defaults are never written to
	require.Equal(t, "stale", defaults["x-csrftoken"])
	require.Len(t, defaults, 3)
}

func TestHeadersGet(t *testing.T) {
	h := Headers{"x-custom": "a"}
	require.Equal(t, "a", h.Get("X-Custom"))
	require.Equal(t, "", h.Get("X-Missing"))
}
