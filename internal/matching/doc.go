// Package matching implements the three pattern strategies a rule can
// use against an incoming request URL:
//
//   - Exact: the pattern is a full URL; every component it specifies
//     (scheme, host, port) must agree with the request, and the path
//     must be identical. Unspecified components act as wildcards.
//   - Template: the pattern is a path template such as /users/:id;
//     :name segments bind path parameters, other segments compare
//     literally, and segment counts must be equal.
//   - Regex: the pattern is a regular expression evaluated against the
//     request path only, unanchored unless the pattern anchors itself.
//
// Template and regex strategies additionally take a host: the stored
// host must equal the request host, or be empty to match any host.
//
// All strategies are pure functions returning (outcome, matched). A
// pattern that cannot be parsed (an invalid URL or a regex that does
// not compile) is a silent no-match, never an error, so one bad
// registration cannot break dispatch of unrelated requests.
package matching
