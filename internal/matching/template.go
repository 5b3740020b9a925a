package matching

import (
	"net/url"
	"strings"

	"github.com/getmockd/intercept/pkg/rule"
)

// Template matches the request path against a path template. The
// stored host must equal the request host exactly, or be empty to
// match any host. Template and path are split on "/" and must have the
// same number of segments; a segment beginning with ":" binds a path
// parameter named by the rest of the segment, every other segment must
// equal the incoming one literally.
func Template(host, template string, u *url.URL) (*rule.Match, bool) {
	if host != "" && host != u.Hostname() {
		return nil, false
	}

	tmplParts := strings.Split(template, "/")
	pathParts := strings.Split(u.Path, "/")
	if len(tmplParts) != len(pathParts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range tmplParts {
		if strings.HasPrefix(part, ":") {
			params[part[1:]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return &rule.Match{Params: params}, true
}
