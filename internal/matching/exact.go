package matching

import (
	"net/url"

	"github.com/getmockd/intercept/pkg/rule"
)

// Exact matches the request URL against a full pattern URL. Scheme,
// host, and port are compared only when the pattern specifies them;
// the path is always compared and must be identical. A pattern that
// does not parse as a URL is a no-match.
func Exact(pattern string, u *url.URL) (*rule.Match, bool) {
	p, err := url.Parse(pattern)
	if err != nil {
		return nil, false
	}

	if p.Scheme != "" && p.Scheme != u.Scheme {
		return nil, false
	}
	if p.Hostname() != "" && p.Hostname() != u.Hostname() {
		return nil, false
	}
	if p.Port() != "" && p.Port() != u.Port() {
		return nil, false
	}
	if p.Path != u.Path {
		return nil, false
	}
	return rule.Matched, true
}
