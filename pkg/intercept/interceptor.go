package intercept

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/getmockd/intercept/internal/registry"
	"github.com/getmockd/intercept/pkg/dispatch"
	"github.com/getmockd/intercept/pkg/logging"
	"github.com/getmockd/intercept/pkg/requestlog"
	"github.com/getmockd/intercept/pkg/rule"
)

// Interceptor owns the rule registry and lifecycle. It starts stopped;
// only between Start and Teardown are requests dispatched against the
// registered rules.
type Interceptor struct {
	mu         sync.RWMutex
	active     bool
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
	base       http.RoundTripper
	history    requestlog.Store
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithLogger sets the operational logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(ic *Interceptor) {
		if log != nil {
			ic.log = log
		}
	}
}

// WithLogConfig builds the operational logger from cfg. Shorthand for
// WithLogger(logging.New(cfg)).
func WithLogConfig(cfg logging.Config) Option {
	return func(ic *Interceptor) {
		ic.log = logging.New(cfg)
	}
}

// WithTransport sets the base transport that unmatched requests fall
// through to. Defaults to http.DefaultTransport.
func WithTransport(base http.RoundTripper) Option {
	return func(ic *Interceptor) {
		if base != nil {
			ic.base = base
		}
	}
}

// WithNetworkDisabled makes unmatched requests fail with
// ErrNetworkDisabled instead of reaching the real network. Useful to
// catch tests that talk to endpoints they forgot to register.
func WithNetworkDisabled() Option {
	return func(ic *Interceptor) {
		ic.base = deadTransport{}
	}
}

// WithRequestLog sets the dispatch history store. Defaults to an
// in-memory store bounded to 1000 entries.
func WithRequestLog(history requestlog.Store) Option {
	return func(ic *Interceptor) {
		if history != nil {
			ic.history = history
		}
	}
}

// New creates a stopped Interceptor.
func New(opts ...Option) *Interceptor {
	ic := &Interceptor{
		registry: registry.New(),
		log:      logging.Nop(),
		base:     http.DefaultTransport,
		history:  requestlog.NewInMemoryStore(1000),
	}
	for _, opt := range opts {
		opt(ic)
	}
	ic.dispatcher = dispatch.New(ic.registry,
		dispatch.WithLogger(ic.log),
		dispatch.WithHistory(ic.history),
	)
	return ic
}

// Register adds an exact rule for the full URL and method. Registering
// the same URL again silently replaces the previous handler while
// keeping the rule's position in precedence order.
func (ic *Interceptor) Register(fullURL string, method rule.Method, h rule.Handler) {
	ic.put(rule.Exact(fullURL, method, h))
}

// RegisterTemplate adds a template rule. An empty host matches any
// host.
func (ic *Interceptor) RegisterTemplate(host, template string, method rule.Method, h rule.Handler) {
	ic.put(rule.Template(host, template, method, h))
}

// RegisterRegex adds a regex rule. An empty host matches any host.
func (ic *Interceptor) RegisterRegex(host, source string, method rule.Method, h rule.Handler) {
	ic.put(rule.Regex(host, source, method, h))
}

func (ic *Interceptor) put(ru *rule.Rule) {
	if replaced := ic.registry.Put(ru); replaced {
		ic.log.Debug("rule overwritten", "key", ru.Key().String())
	} else {
		ic.log.Debug("rule registered", "key", ru.Key().String(), "method", ru.Method.String())
	}
}

// Unregister removes the exact rule for the literal URL. No-op if
// absent.
func (ic *Interceptor) Unregister(fullURL string) {
	ic.registry.RemoveExact(fullURL)
}

// UnregisterTemplate removes template rules for the host whose
// template has the given prefix. A wildcard (empty host) removal never
// touches host-specific rules, and vice versa.
func (ic *Interceptor) UnregisterTemplate(host, template string) {
	ic.registry.RemoveTemplate(host, template)
}

// UnregisterRegex removes regex rules for the host whose source has
// the given prefix. Same host scoping as UnregisterTemplate.
func (ic *Interceptor) UnregisterRegex(host, source string) {
	ic.registry.RemoveRegex(host, source)
}

// Clear removes all rules without changing lifecycle state.
func (ic *Interceptor) Clear() {
	ic.registry.Clear()
}

// Rules returns all registered rules in precedence order.
func (ic *Interceptor) Rules() []*rule.Rule {
	return ic.registry.List()
}

// History returns the dispatch history store.
func (ic *Interceptor) History() requestlog.Store {
	return ic.history
}

// Start activates interception. Idempotent.
func (ic *Interceptor) Start() {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	if ic.active {
		return
	}
	ic.active = true
	ic.log.Info("interception started")
}

// Teardown deactivates interception and clears all rules in one step:
// any dispatch issued afterwards sees an empty registry and behaves as
// no-match. Idempotent.
func (ic *Interceptor) Teardown() {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	if !ic.active {
		return
	}
	ic.active = false
	ic.registry.Clear()
	ic.log.Info("interception stopped")
}

// IsActive reports whether interception is currently active.
func (ic *Interceptor) IsActive() bool {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	return ic.active
}

// Transport returns the http.RoundTripper hook. Install it on any
// http.Client whose requests should be interceptable.
func (ic *Interceptor) Transport() http.RoundTripper {
	return &transport{ic: ic}
}

// Client returns a ready http.Client wired to Transport.
func (ic *Interceptor) Client() *http.Client {
	return &http.Client{Transport: ic.Transport()}
}
