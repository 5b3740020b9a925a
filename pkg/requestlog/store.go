package requestlog

import "strings"

// Logger is the minimal sink for dispatch entries. The dispatcher
// accepts this interface so any implementation that can record entries
// will do, whether it keeps them in memory or forwards them somewhere
// else.
type Logger interface {
	Log(entry *Entry)
}

// Store adds querying on top of Logger. Store embeds Logger, so any
// Store can be used where a Logger is expected.
type Store interface {
	Logger

	// Get retrieves an entry by ID. Nil if not found.
	Get(id string) *Entry

	// List returns entries in recording order, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all entries.
	Clear()

	// Count returns the number of stored entries.
	Count() int
}

// Filter defines criteria for selecting entries.
type Filter struct {
	// Method filters by HTTP method.
	Method string

	// Host filters by exact host.
	Host string

	// Path filters by path prefix.
	Path string

	// MatchedKey filters by the answering rule's key.
	MatchedKey string

	// Result filters by dispatch result.
	Result string

	// Limit caps the number of entries returned. Zero means no cap.
	Limit int
}

// matches reports whether the entry satisfies every set criterion.
func (f *Filter) matches(e *Entry) bool {
	if f.Method != "" && f.Method != e.Method {
		return false
	}
	if f.Host != "" && f.Host != e.Host {
		return false
	}
	if f.Path != "" && !strings.HasPrefix(e.Path, f.Path) {
		return false
	}
	if f.MatchedKey != "" && f.MatchedKey != e.MatchedKey {
		return false
	}
	if f.Result != "" && f.Result != e.Result {
		return false
	}
	return true
}
