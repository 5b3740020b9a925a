package rule

import (
	"net/http"
	"net/url"
)

// Request is an immutable snapshot of an outgoing HTTP request, built
// by the transport hook before dispatch. It carries the URL, the
// method, and the headers. It deliberately does not carry a body:
// interception decisions are made on the request line and headers
// only.
type Request struct {
	url    *url.URL
	method Method
	header http.Header
}

// Snapshot builds a Request from a live *http.Request. The URL and
// headers are cloned so that later mutation of the live request cannot
// be observed by handlers.
func Snapshot(req *http.Request) (*Request, error) {
	m, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	u := *req.URL
	return &Request{
		url:    &u,
		method: m,
		header: req.Header.Clone(),
	}, nil
}

// NewRequest builds a Request directly from its parts. Intended for
// tests and for callers that do not have an *http.Request at hand.
// The URL and headers are cloned.
func NewRequest(u *url.URL, method Method, header http.Header) *Request {
	cu := *u
	return &Request{url: &cu, method: method, header: header.Clone()}
}

// URL returns the request URL. Callers must not mutate it.
func (r *Request) URL() *url.URL { return r.url }

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// Header returns the value of the named header, looked up
// case-insensitively. Empty string if the header is absent.
func (r *Request) Header(name string) string { return r.header.Get(name) }

// Headers returns the full header map. Callers must not mutate it.
func (r *Request) Headers() http.Header { return r.header }

// Host returns the hostname component of the URL, without any port.
func (r *Request) Host() string { return r.url.Hostname() }

// Path returns the path component of the URL.
func (r *Request) Path() string { return r.url.Path }
