package instagram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractCookie(t *testing.T) {
	setCookie := []string{
		"csrftoken=X; expires=Thu, 16-Oct-2027 10:00:00 GMT; Max-Age=31449600; Path=/; Secure",
		"mid=Zm1kAAALAAG; Domain=.instagram.com; Path=/",
		"rur=FRC; Path=/; HttpOnly",
		"csrftoken=Y; Path=/",
	}

	testCases := []struct {
		name     string
		expected []string
	}{
		{name: "csrftoken", expected: []string{"X", "Y"}},
		{name: "mid", expected: []string{"Zm1kAAALAAG"}},
		{name: "sessionid", expected: nil},
		{name: "rur", expected: []string{"FRC"}},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ExtractCookie(test.name, setCookie), test.name)
	}
}

func TestExtractCookieNameBoundary(t *testing.T) {
	setCookie := []string{
		"somemid=nope; Path=/",
		"ig_mid=nope",
		"a=b; mid=yes; Path=/",
	}
	require.Equal(t, []string{"yes"}, ExtractCookie("mid", setCookie))
}

func TestExtractCookieSkipsEmpty(t *testing.T) {
	setCookie := []string{
		`sessionid=""; expires=Thu, 01-Jan-1970 00:00:00 GMT; Max-Age=0; Path=/`,
		"sessionid=; Path=/",
		"sessionid=IGSC123%3A; Path=/; HttpOnly",
	}
	require.Equal(t, []string{"IGSC123%3A"}, ExtractCookie("sessionid", setCookie))
}

func TestExtractCookieNoHeaders(t *testing.T) {
	require.Empty(t, ExtractCookie("csrftoken", nil))
}

func TestTokensAuthenticated(t *testing.T) {
	require.False(t, Tokens{CSRF: "c", Mid: "m"}.Authenticated())
	require.True(t, Tokens{SessionID: "s"}.Authenticated())
}
