package rule

import (
	"fmt"
	"strings"
)

// Method is an HTTP request method. Rules match a single method;
// there is no method wildcard.
type Method string

// The fixed set of methods a rule can be registered for.
const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// methods maps the canonical spelling of every supported method.
var methods = map[string]Method{
	"GET":     MethodGet,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"DELETE":  MethodDelete,
	"PATCH":   MethodPatch,
	"HEAD":    MethodHead,
	"OPTIONS": MethodOptions,
}

// ParseMethod converts an arbitrary method string to a Method,
// ignoring case. Unknown strings are a construction error reported
// immediately; they are never deferred to dispatch time.
func ParseMethod(s string) (Method, error) {
	if m, ok := methods[strings.ToUpper(s)]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown HTTP method %q", s)
}

// String returns the canonical method spelling.
func (m Method) String() string { return string(m) }
