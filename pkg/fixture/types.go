package fixture

import (
	"gopkg.in/yaml.v3"
)

// File is the parsed content of one fixture file.
type File struct {
	// ID uniquely identifies this loaded file instance, assigned at
	// parse time. It correlates validation reports and log lines when
	// the same path is loaded more than once.
	ID string `yaml:"-"`

	// Path is where the file was loaded from. Empty for fixtures
	// parsed from memory.
	Path string `yaml:"-"`

	// Rules are the rule specs in file order.
	Rules []Spec `yaml:"-"`
}

// UnmarshalYAML accepts both a single rule document and an array of
// rules.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&f.Rules)
	}
	var single Spec
	if err := node.Decode(&single); err != nil {
		return err
	}
	f.Rules = []Spec{single}
	return nil
}

// Spec describes one rule.
type Spec struct {
	// Kind is the matching strategy: exact, template, or regex.
	Kind string `yaml:"kind"`

	// Host scopes template and regex rules. Empty means any host.
	Host string `yaml:"host,omitempty"`

	// Pattern is the full URL (exact), path template (template), or
	// regex source (regex).
	Pattern string `yaml:"pattern"`

	// Method is the HTTP method, case-insensitive.
	Method string `yaml:"method"`

	// When is an optional expr predicate over the incoming request.
	// When it evaluates false the rule passes through.
	When string `yaml:"when,omitempty"`

	// PassThrough makes the rule always defer to the next rule or the
	// real network. Mutually exclusive with Response.
	PassThrough bool `yaml:"passThrough,omitempty"`

	// Response is the canned response. Required unless PassThrough.
	Response *ResponseSpec `yaml:"response,omitempty"`
}

// ResponseSpec describes the canned response of a fixture rule. At
// most one of Text, JSON, Base64 may be set.
type ResponseSpec struct {
	// Status is the status code. Zero means 200.
	Status int `yaml:"status,omitempty"`

	// Reason is the status line reason phrase.
	Reason string `yaml:"reason,omitempty"`

	// Headers are the response headers.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Text is a plain text body.
	Text *string `yaml:"text,omitempty"`

	// JSON is an arbitrary value encoded as a JSON body with the
	// default JSON content type.
	JSON any `yaml:"json,omitempty"`

	// Base64 is a base64-encoded binary body.
	Base64 *string `yaml:"base64,omitempty"`

	// DelayMs delays the response, simulating latency. The delay
	// respects request context cancellation.
	DelayMs int `yaml:"delayMs,omitempty"`
}
