package matching

import (
	"net/url"

	"github.com/getmockd/intercept/pkg/rule"
)

// Eval runs the rule's matching strategy against the request URL. A
// rule with an unknown kind never matches.
func Eval(r *rule.Rule, u *url.URL) (*rule.Match, bool) {
	switch r.Kind {
	case rule.KindExact:
		return Exact(r.Pattern, u)
	case rule.KindTemplate:
		return Template(r.Host, r.Pattern, u)
	case rule.KindRegex:
		return Regex(r.Host, r.Pattern, u)
	default:
		return nil, false
	}
}
