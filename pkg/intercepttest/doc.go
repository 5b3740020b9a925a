// Package intercepttest provides test helpers for intercepting HTTP
// requests with minimal ceremony.
//
// New returns a started interceptor that tears itself down when the
// test completes. Expectations are registered with a fluent builder
// and answered with canned replies:
//
//	func TestUserLookup(t *testing.T) {
//		ic := intercepttest.New(t)
//		ic.ExpectTemplate("api.example.com", "/users/:id", "GET").
//			ReplyJSON(map[string]any{"name": "alice"})
//
//		svc := NewService(ic.Client())
//		// ...
//
//		ic.AssertCalled(t, "GET", "/users/42")
//	}
//
// Times(n) limits how often an expectation answers; once exhausted it
// passes through to lower-precedence rules or the real network.
package intercepttest
