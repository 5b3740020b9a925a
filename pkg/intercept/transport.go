package intercept

import (
	"errors"
	"net/http"

	"github.com/getmockd/intercept/pkg/rule"
)

// ErrNetworkDisabled is returned for unmatched requests when the
// interceptor was built with WithNetworkDisabled.
var ErrNetworkDisabled = errors.New("intercept: network disabled and no rule matched")

// deadTransport is the base transport installed by
// WithNetworkDisabled.
type deadTransport struct{}

func (deadTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return nil, &noRuleError{req: req}
}

// noRuleError carries the request URL alongside ErrNetworkDisabled so
// test failures name the endpoint that was not registered.
type noRuleError struct {
	req *http.Request
}

func (e *noRuleError) Error() string {
	return ErrNetworkDisabled.Error() + ": " + e.req.Method + " " + e.req.URL.String()
}

func (e *noRuleError) Unwrap() error { return ErrNetworkDisabled }

// transport is the RoundTripper hook. For every request it builds a
// snapshot, dispatches, and either renders the terminal response or
// delegates to the base transport.
type transport struct {
	ic *Interceptor
}

// RoundTrip implements http.RoundTripper. A handler error is returned
// as the transport error, so to the caller a faulted handler looks
// exactly like a failed network call. Requests whose method is outside
// the supported set cannot match any rule and go straight to the base
// transport.
func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ic := t.ic
	if !ic.IsActive() {
		return ic.base.RoundTrip(req)
	}

	snap, err := rule.Snapshot(req)
	if err != nil {
		return ic.base.RoundTrip(req)
	}

	resp, err := ic.dispatcher.Dispatch(req.Context(), snap)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		ic.log.Debug("no rule matched", "method", req.Method, "url", req.URL.String())
		return ic.base.RoundTrip(req)
	}
	return render(resp, req)
}
