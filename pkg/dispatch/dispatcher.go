package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/getmockd/intercept/internal/matching"
	"github.com/getmockd/intercept/internal/registry"
	"github.com/getmockd/intercept/pkg/logging"
	"github.com/getmockd/intercept/pkg/requestlog"
	"github.com/getmockd/intercept/pkg/rule"
)

// Dispatcher scans registered rules and resolves requests.
type Dispatcher struct {
	registry *registry.Registry
	log      *slog.Logger
	history  requestlog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the operational logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithHistory sets a sink that receives one entry per dispatch.
func WithHistory(history requestlog.Logger) Option {
	return func(d *Dispatcher) {
		d.history = history
	}
}

// New creates a Dispatcher over the given registry.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch resolves the request against the registered rules. It
// returns the first terminal response produced by a matching rule's
// handler, (nil, nil) when no rule answers, or the handler's error
// unmodified. Rules are consulted strictly in registration order, one
// handler fully resolved before the next is considered; a pass-through
// result continues the scan with the next rule.
func (d *Dispatcher) Dispatch(ctx context.Context, req *rule.Request) (*rule.Response, error) {
	start := time.Now()

	var cursor uint64
	for {
		ru, seq, ok := d.registry.Next(cursor)
		if !ok {
			break
		}
		cursor = seq

		if ru.Method != req.Method() {
			continue
		}

		m, matched := matching.Eval(ru, req.URL())
		if !matched {
			continue
		}

		key := ru.Key()
		d.log.Debug("rule matched",
			"key", key.String(),
			"kind", string(ru.Kind),
			"method", req.Method().String(),
			"url", req.URL().String())

		resp, err := ru.Handler(ctx, req, m)
		if err != nil {
			d.record(req, &key, start, requestlog.ResultError, 0, err)
			return nil, err
		}
		if resp == nil || resp.IsPassThrough() {
			d.log.Debug("handler passed through", "key", key.String())
			continue
		}

		d.record(req, &key, start, requestlog.ResultMocked, resp.StatusCode, nil)
		return resp, nil
	}

	d.record(req, nil, start, requestlog.ResultNetwork, 0, nil)
	return nil, nil
}

func (d *Dispatcher) record(req *rule.Request, key *rule.Key, start time.Time, result string, status int, err error) {
	if d.history == nil {
		return
	}
	e := &requestlog.Entry{
		Timestamp:  start,
		Method:     req.Method().String(),
		Host:       req.Host(),
		Path:       req.Path(),
		Query:      req.URL().RawQuery,
		Result:     result,
		Status:     status,
		DurationMs: int(time.Since(start).Milliseconds()),
	}
	if key != nil {
		e.MatchedKey = key.String()
		e.MatchedKind = string(key.Kind)
	}
	if err != nil {
		e.Error = err.Error()
	}
	d.history.Log(e)
}
