package intercepttest

import (
	"testing"

	"github.com/getmockd/intercept/pkg/intercept"
	"github.com/getmockd/intercept/pkg/requestlog"
)

// Interceptor wraps intercept.Interceptor with test lifecycle and
// assertion helpers. All registration and transport methods of the
// underlying interceptor are available directly.
type Interceptor struct {
	*intercept.Interceptor

	t testing.TB
}

// New creates a started interceptor that is torn down automatically
// when the test completes. By default the network is disabled, so a
// request no expectation answers fails the call with
// intercept.ErrNetworkDisabled; pass intercept.WithTransport to allow
// real fall-through.
func New(t testing.TB, opts ...intercept.Option) *Interceptor {
	t.Helper()
	ic := intercept.New(append([]intercept.Option{intercept.WithNetworkDisabled()}, opts...)...)
	ic.Start()
	t.Cleanup(ic.Teardown)
	return &Interceptor{Interceptor: ic, t: t}
}

// calls counts history entries for the method and path that were
// answered by a rule.
func (ic *Interceptor) calls(method, path string) int {
	entries := ic.History().List(&requestlog.Filter{
		Method: method,
		Path:   path,
		Result: requestlog.ResultMocked,
	})
	// The path filter is a prefix filter; require exact path here.
	n := 0
	for _, e := range entries {
		if e.Path == path {
			n++
		}
	}
	return n
}

// AssertCalled fails the test unless at least one request with the
// method and exact path was answered by a rule.
func (ic *Interceptor) AssertCalled(t testing.TB, method, path string) {
	t.Helper()
	if ic.calls(method, path) == 0 {
		t.Errorf("expected %s %s to have been intercepted, but it was not", method, path)
	}
}

// AssertCalledTimes fails the test unless exactly n requests with the
// method and exact path were answered by a rule.
func (ic *Interceptor) AssertCalledTimes(t testing.TB, method, path string, n int) {
	t.Helper()
	if got := ic.calls(method, path); got != n {
		t.Errorf("expected %s %s to have been intercepted %d times, got %d", method, path, n, got)
	}
}

// AssertNotCalled fails the test if any request with the method and
// exact path was answered by a rule.
func (ic *Interceptor) AssertNotCalled(t testing.TB, method, path string) {
	t.Helper()
	if got := ic.calls(method, path); got > 0 {
		t.Errorf("expected %s %s not to be intercepted, but it was (%d times)", method, path, got)
	}
}
