package intercepttest

import (
	"context"
	"sync/atomic"

	"github.com/getmockd/intercept/pkg/respond"
	"github.com/getmockd/intercept/pkg/rule"
)

// Expectation builds one rule fluently. It is finalized by a Reply*
// call (or PassThrough), which registers the rule.
type Expectation struct {
	ic     *Interceptor
	build  func(method rule.Method, h rule.Handler)
	method rule.Method
	times  int64 // 0 means unlimited
}

// Expect starts an expectation for an exact URL.
func (ic *Interceptor) Expect(method, fullURL string) *Expectation {
	ic.t.Helper()
	return &Expectation{
		ic:     ic,
		method: ic.parseMethod(method),
		build: func(m rule.Method, h rule.Handler) {
			ic.Register(fullURL, m, h)
		},
	}
}

// ExpectTemplate starts an expectation for a path template. An empty
// host matches any host.
func (ic *Interceptor) ExpectTemplate(host, template, method string) *Expectation {
	ic.t.Helper()
	return &Expectation{
		ic:     ic,
		method: ic.parseMethod(method),
		build: func(m rule.Method, h rule.Handler) {
			ic.RegisterTemplate(host, template, m, h)
		},
	}
}

// ExpectRegex starts an expectation for a path regex. An empty host
// matches any host.
func (ic *Interceptor) ExpectRegex(host, source, method string) *Expectation {
	ic.t.Helper()
	return &Expectation{
		ic:     ic,
		method: ic.parseMethod(method),
		build: func(m rule.Method, h rule.Handler) {
			ic.RegisterRegex(host, source, m, h)
		},
	}
}

func (ic *Interceptor) parseMethod(method string) rule.Method {
	ic.t.Helper()
	m, err := rule.ParseMethod(method)
	if err != nil {
		ic.t.Fatalf("intercepttest: %v", err)
	}
	return m
}

// Times limits how often the expectation answers. After n answered
// requests the rule passes through, deferring to lower-precedence
// rules or the base transport.
func (e *Expectation) Times(n int) *Expectation {
	e.times = int64(n)
	return e
}

// ReplyWith registers the expectation with a custom handler.
func (e *Expectation) ReplyWith(h rule.Handler) {
	e.ic.t.Helper()
	if e.times > 0 {
		var answered int64
		inner := h
		h = func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
			if atomic.AddInt64(&answered, 1) > e.times {
				return respond.PassThrough(), nil
			}
			return inner(ctx, req, m)
		}
	}
	e.build(e.method, h)
}

// ReplyText registers the expectation answering with a text body.
func (e *Expectation) ReplyText(text string, opts ...respond.Option) {
	e.ic.t.Helper()
	resp := respond.Text(text, opts...)
	e.ReplyWith(func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
		return resp, nil
	})
}

// ReplyJSON registers the expectation answering with v encoded as
// JSON. Encoding failure fails the test immediately.
func (e *Expectation) ReplyJSON(v any, opts ...respond.Option) {
	e.ic.t.Helper()
	resp, err := respond.JSON(v, opts...)
	if err != nil {
		e.ic.t.Fatalf("intercepttest: %v", err)
	}
	e.ReplyWith(func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
		return resp, nil
	})
}

// ReplyStatus registers the expectation answering with a bare status.
func (e *Expectation) ReplyStatus(status int, opts ...respond.Option) {
	e.ic.t.Helper()
	resp := respond.Status(status, opts...)
	e.ReplyWith(func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
		return resp, nil
	})
}

// ReplyError registers the expectation failing the request with err,
// simulating a network failure.
func (e *Expectation) ReplyError(err error) {
	e.ic.t.Helper()
	e.ReplyWith(func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
		return nil, err
	})
}

// PassThrough registers the expectation as always deferring. Useful to
// pin precedence while letting the request continue.
func (e *Expectation) PassThrough() {
	e.ic.t.Helper()
	e.ReplyWith(func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
		return respond.PassThrough(), nil
	})
}
