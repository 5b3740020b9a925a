package requestlog

import "time"

// Result classifies how a dispatch ended.
const (
	// ResultMocked means a rule answered with a terminal response.
	ResultMocked = "mocked"

	// ResultNetwork means no rule answered; the request went (or was
	// handed) to the real network.
	ResultNetwork = "network"

	// ResultError means a handler returned an error, surfaced to the
	// caller as a failed request.
	ResultError = "error"
)

// Entry captures one dispatched request and its outcome.
type Entry struct {
	// ID is a unique, time-sortable identifier for the entry.
	ID string `json:"id"`

	// Timestamp is when the dispatch started.
	Timestamp time.Time `json:"timestamp"`

	// Method is the HTTP method of the request.
	Method string `json:"method"`

	// Host is the request host, without port.
	Host string `json:"host"`

	// Path is the request URL path.
	Path string `json:"path"`

	// Query is the raw query string.
	Query string `json:"query,omitempty"`

	// MatchedKey is the rendered storage key of the rule that answered
	// the request. Empty when no rule answered.
	MatchedKey string `json:"matchedKey,omitempty"`

	// MatchedKind is the kind of the answering rule (exact, template,
	// regex). Empty when no rule answered.
	MatchedKind string `json:"matchedKind,omitempty"`

	// Result is one of ResultMocked, ResultNetwork, ResultError.
	Result string `json:"result"`

	// Status is the status code of the terminal response, if any.
	Status int `json:"status,omitempty"`

	// DurationMs is the dispatch time in milliseconds.
	DurationMs int `json:"durationMs"`

	// Error is the handler error message when Result is ResultError.
	Error string `json:"error,omitempty"`
}
