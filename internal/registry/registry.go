package registry

import (
	"strings"
	"sync"

	"github.com/getmockd/intercept/pkg/rule"
)

// entry pairs a stored rule with its insertion sequence number. The
// sequence survives overwrite, which is what keeps a re-registered
// rule in its original position.
type entry struct {
	seq  uint64
	rule *rule.Rule
}

// Registry is a thread-safe ordered store of interception rules.
type Registry struct {
	mu      sync.RWMutex
	byKey   map[rule.Key]*entry
	ordered []*entry
	nextSeq uint64
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byKey: make(map[rule.Key]*entry),
	}
}

// Put stores the rule under its derived key. If the key is already
// occupied the newer rule silently replaces the older one, keeping the
// slot's original position in enumeration order. Returns true when an
// existing rule was replaced.
func (r *Registry) Put(ru *rule.Rule) bool {
	key := ru.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.byKey[key]; ok {
		e.rule = ru
		return true
	}

	r.nextSeq++
	e := &entry{seq: r.nextSeq, rule: ru}
	r.byKey[key] = e
	r.ordered = append(r.ordered, e)
	return false
}

// RemoveExact removes the exact rule stored under the literal URL
// string. No-op if absent. Returns the number of rules removed.
func (r *Registry) RemoveExact(url string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(func(k rule.Key) bool {
		return k.Kind == rule.KindExact && k.Pattern == url
	})
}

// RemoveTemplate removes every template rule registered for the given
// host whose template has the given prefix. The host is compared
// literally: an empty host names the wildcard slot only, so a wildcard
// removal never touches host-specific rules and vice versa.
func (r *Registry) RemoveTemplate(host, template string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(func(k rule.Key) bool {
		return k.Kind == rule.KindTemplate && k.Host == host && strings.HasPrefix(k.Pattern, template)
	})
}

// RemoveRegex removes every regex rule registered for the given host
// whose source has the given prefix. Same host semantics as
// RemoveTemplate.
func (r *Registry) RemoveRegex(host, source string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(func(k rule.Key) bool {
		return k.Kind == rule.KindRegex && k.Host == host && strings.HasPrefix(k.Pattern, source)
	})
}

func (r *Registry) removeLocked(match func(rule.Key) bool) int {
	removed := 0
	kept := r.ordered[:0]
	for _, e := range r.ordered {
		key := e.rule.Key()
		if match(key) {
			delete(r.byKey, key)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.ordered = kept
	return removed
}

// Next returns the first rule whose insertion sequence is greater than
// after, together with that rule's sequence. The pair forms a live
// cursor: starting from zero and feeding each returned sequence back
// in walks the registry in insertion order, observing concurrent
// additions and removals as they happen. ok is false when the cursor
// is exhausted.
func (r *Registry) Next(after uint64) (ru *rule.Rule, seq uint64, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.ordered {
		if e.seq > after {
			return e.rule, e.seq, true
		}
	}
	return nil, 0, false
}

// List returns all rules in insertion order.
func (r *Registry) List() []*rule.Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*rule.Rule, len(r.ordered))
	for i, e := range r.ordered {
		out[i] = e.rule
	}
	return out
}

// Len returns the number of stored rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// Clear removes all rules.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey = make(map[rule.Key]*entry)
	r.ordered = nil
}
