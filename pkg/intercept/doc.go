// Package intercept diverts outgoing HTTP requests to registered
// handlers instead of the network, for use in automated tests.
//
// An Interceptor owns a rule registry and a dispatcher and installs
// itself as an http.RoundTripper, so nothing ambient is patched: hand
// Client() (or Transport()) to the code under test and every request
// that matches a registered rule is answered synthetically. Requests
// no rule answers go to the base transport, normally the real network,
// unless that is disabled.
//
//	ic := intercept.New()
//	ic.Start()
//	defer ic.Teardown()
//
//	ic.Register("http://api.example.com/users/1", rule.MethodGet,
//		func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
//			return respond.JSON(map[string]any{"id": 1})
//		})
//
//	resp, err := ic.Client().Get("http://api.example.com/users/1")
//
// Interception is active only between Start and Teardown. Teardown
// clears all rules, so requests issued afterwards reach the base
// transport untouched.
package intercept
