package rule

// Kind identifies the matching strategy of a rule.
type Kind string

// Supported rule kinds.
const (
	KindExact    Kind = "exact"
	KindTemplate Kind = "template"
	KindRegex    Kind = "regex"
)

// regexKeySeparator joins host and regex source in the rendered key
// form. The separator keeps the host segment unambiguous because "|||"
// cannot appear in a hostname.
const regexKeySeparator = "|||"

// Key is the storage identity of a rule. It is a discriminated
// structure rather than a concatenated string so that the three kinds
// can never collide with each other, while the rendered String form
// stays equivalent to the documented key layout.
//
// For exact rules, Host is always empty and Pattern holds the literal
// URL string. For template and regex rules, Host holds the host
// segment literally, including the empty string, which denotes "any
// host" and is a distinct storage slot from every concrete host.
type Key struct {
	Kind    Kind
	Host    string
	Pattern string
}

// String renders the key in its flat form: the literal URL for exact
// rules, host followed by the template path for template rules, and
// host, "|||", and the regex source for regex rules.
func (k Key) String() string {
	if k.Kind == KindRegex {
		return k.Host + regexKeySeparator + k.Pattern
	}
	return k.Host + k.Pattern
}
