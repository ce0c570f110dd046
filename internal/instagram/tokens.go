package instagram

import (
	"regexp"
	"sync"
)

// Tokens is the session state of a client. SessionID is empty until a login
// succeeds.
type Tokens struct {
	CSRF      string `json:"csrf"`
	Mid       string `json:"mid"`
	SessionID string `json:"sessionid"`
}

// Authenticated reports whether a session id is present. It says nothing about
// whether the platform still accepts it.
func (t Tokens) Authenticated() bool {
	return t.SessionID != ""
}

var (
	cookiePatternLock sync.Mutex
	cookiePatterns    = map[string]*regexp.Regexp{}
)

func cookiePattern(name string) *regexp.Regexp {
	cookiePatternLock.Lock()
	defer cookiePatternLock.Unlock()

	pattern, ok := cookiePatterns[name]
	if ok {
		return pattern
	}
	pattern = regexp.MustCompile(`(?:^|;)\s*` + regexp.QuoteMeta(name) + `=([^;]*)`)
	cookiePatterns[name] = pattern
	return pattern
}

// ExtractCookie returns every non-empty value assigned to the cookie `name`
// across the raw Set-Cookie header values, in order of appearance.
func ExtractCookie(name string, setCookie []string) []string {
	pattern := cookiePattern(name)

	var out []string
	for _, header := range setCookie {
		for _, groups := range pattern.FindAllStringSubmatch(header, -1) {
			value := groups[1]
			if value == "" || value == `""` {
				continue
			}
			out = append(out, value)
		}
	}
	return out
}
