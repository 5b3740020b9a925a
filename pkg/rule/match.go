package rule

// Match is the outcome of a successful pattern match. Template matches
// populate Params; regex matches populate Groups. An exact match
// carries no extracted data and is represented by the shared Matched
// value.
type Match struct {
	// Params maps template parameter names to the path segment values
	// they bound. Non-nil (possibly empty) for template matches, nil
	// otherwise.
	Params map[string]string

	// Groups holds the regex capture groups. Groups[0] is the full
	// match, Groups[1:] the numbered subgroups. Nil for non-regex
	// matches.
	Groups []string
}

// Matched is the empty outcome shared by all exact matches.
var Matched = &Match{}

// Param returns the value bound to the named template parameter, or
// empty string if the name was not bound.
func (m *Match) Param(name string) string {
	return m.Params[name]
}

// Group returns capture group i, or empty string if the match has no
// such group. Group 0 is the full matched text.
func (m *Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// GroupCount returns the number of capture groups, counting the full
// match as group 0. Zero for non-regex matches.
func (m *Match) GroupCount() int { return len(m.Groups) }
