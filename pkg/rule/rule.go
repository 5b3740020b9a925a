package rule

import "context"

// Handler answers an intercepted request. The dispatcher always waits
// for the call to return before consulting any further rule, so a
// handler may block, sleep, or perform real asynchronous work of its
// own. Returning an error simulates a failed network call: the error
// propagates unmodified to whatever issued the request. Returning a
// pass-through response (or nil) tells the dispatcher to keep scanning
// lower-precedence rules.
type Handler func(ctx context.Context, req *Request, m *Match) (*Response, error)

// Rule is one registered interception directive: which requests to
// divert, and the handler that answers them.
type Rule struct {
	// Kind selects the matching strategy.
	Kind Kind

	// Host scopes template and regex rules to one host. Empty means
	// any host. Unused for exact rules, whose Pattern carries the
	// whole URL.
	Host string

	// Pattern is the raw matching pattern: a full URL for exact
	// rules, a path template for template rules, or a regex source
	// for regex rules.
	Pattern string

	// Method is the single HTTP method this rule applies to.
	Method Method

	// Handler produces the response for a matched request.
	Handler Handler
}

// Exact builds a rule that fires when the request URL agrees with
// every component the pattern URL specifies (scheme, host, port) and
// has an identical path.
func Exact(url string, method Method, h Handler) *Rule {
	return &Rule{Kind: KindExact, Pattern: url, Method: method, Handler: h}
}

// Template builds a rule whose pattern is a path template such as
// /users/:id. An empty host matches any host.
func Template(host, template string, method Method, h Handler) *Rule {
	return &Rule{Kind: KindTemplate, Host: host, Pattern: template, Method: method, Handler: h}
}

// Regex builds a rule whose pattern is a regular expression evaluated
// against the request path. An empty host matches any host.
func Regex(host, source string, method Method, h Handler) *Rule {
	return &Rule{Kind: KindRegex, Host: host, Pattern: source, Method: method, Handler: h}
}

// Key derives the storage identity of the rule. Two registrations with
// the same key occupy the same slot: the newer one silently replaces
// the older one while keeping its position in registration order.
func (r *Rule) Key() Key {
	if r.Kind == KindExact {
		return Key{Kind: KindExact, Pattern: r.Pattern}
	}
	return Key{Kind: r.Kind, Host: r.Host, Pattern: r.Pattern}
}
