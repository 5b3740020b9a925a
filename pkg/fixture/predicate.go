package fixture

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/getmockd/intercept/pkg/rule"
)

// predicateEnv is the value space a when predicate sees.
type predicateEnv struct {
	Method string            `expr:"method"`
	Host   string            `expr:"host"`
	Path   string            `expr:"path"`
	Query  map[string]string `expr:"query"`
	Header map[string]string `expr:"header"`
	Params map[string]string `expr:"params"`
	Groups []string          `expr:"groups"`
}

// programCache caches compiled predicates so each expression is
// compiled once per process, not per dispatch.
var (
	programMu    sync.RWMutex
	programCache = make(map[string]*vm.Program)
)

// compilePredicate compiles a when expression, returning the cached
// program when available. Predicates must evaluate to a boolean.
func compilePredicate(source string) (*vm.Program, error) {
	programMu.RLock()
	prog, ok := programCache[source]
	programMu.RUnlock()
	if ok {
		return prog, nil
	}

	prog, err := expr.Compile(source,
		expr.Env(predicateEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling predicate %q: %w", source, err)
	}

	programMu.Lock()
	programCache[source] = prog
	programMu.Unlock()
	return prog, nil
}

// evalPredicate runs a compiled predicate against a request and match
// outcome.
func evalPredicate(prog *vm.Program, req *rule.Request, m *rule.Match) (bool, error) {
	env := predicateEnv{
		Method: req.Method().String(),
		Host:   req.Host(),
		Path:   req.Path(),
		Query:  make(map[string]string),
		Header: make(map[string]string),
		Params: m.Params,
		Groups: m.Groups,
	}
	if env.Params == nil {
		env.Params = map[string]string{}
	}
	for name, values := range req.URL().Query() {
		if len(values) > 0 {
			env.Query[name] = values[0]
		}
	}
	for name, values := range req.Headers() {
		if len(values) > 0 {
			env.Header[name] = values[0]
		}
	}

	out, err := expr.Run(prog, env)
	if err != nil {
		return false, fmt.Errorf("evaluating predicate: %w", err)
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("predicate returned %T, want bool", out)
	}
	return result, nil
}
