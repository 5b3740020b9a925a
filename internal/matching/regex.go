package matching

import (
	"net/url"
	"regexp"
	"sync"

	"github.com/getmockd/intercept/pkg/rule"
)

// compiled caches regex compilations across dispatches so that a hot
// rule is compiled once, not per request.
var (
	compiledMu sync.RWMutex
	compiled   = make(map[string]*regexp.Regexp)
)

// compile returns the cached compilation of source, compiling and
// caching on first use. A source that does not compile is cached as
// nil so the failure is not re-attempted per request.
func compile(source string) *regexp.Regexp {
	compiledMu.RLock()
	re, ok := compiled[source]
	compiledMu.RUnlock()
	if ok {
		return re
	}

	re, err := regexp.Compile(source)
	if err != nil {
		re = nil
	}
	compiledMu.Lock()
	compiled[source] = re
	compiledMu.Unlock()
	return re
}

// Regex matches the request path against a regular expression. The
// stored host must equal the request host exactly, or be empty to
// match any host. The expression is evaluated against the path only
// (never the query string) and is unanchored: the first match anywhere
// in the path counts. A source that does not compile is a no-match.
func Regex(host, source string, u *url.URL) (*rule.Match, bool) {
	if host != "" && host != u.Hostname() {
		return nil, false
	}

	re := compile(source)
	if re == nil {
		return nil, false
	}

	groups := re.FindStringSubmatch(u.Path)
	if groups == nil {
		return nil, false
	}
	return &rule.Match{Groups: groups}, true
}
