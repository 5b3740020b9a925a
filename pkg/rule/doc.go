// Package rule defines the data model for HTTP request interception:
// the Rule triple (pattern, method, handler), the storage Key derived
// from a rule, the immutable Request snapshot handed to handlers, the
// Match outcome produced by a successful pattern match, and the
// Response value a handler answers with.
//
// Rules come in three kinds. An exact rule carries a full URL and fires
// when the URL components it specifies agree with the request. A
// template rule carries a path template such as /users/:id whose :name
// segments bind path parameters. A regex rule carries a regular
// expression evaluated against the request path. Template and regex
// rules carry the host separately from the pattern text, so the same
// pattern can be host-specific or host-wildcard (empty host) without
// rewriting it.
package rule
