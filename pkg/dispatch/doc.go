// Package dispatch resolves one intercepted request to either a
// terminal response or "no match".
//
// Rules are scanned in registration order, which is the precedence
// order: the first rule whose method and pattern both match the
// request gets to answer. A handler may answer with a pass-through
// response, in which case the scan continues with the next rule as if
// this one had not matched; a handler error propagates unmodified to
// the caller, surfacing exactly like a failed network call. When the
// scan exhausts all rules without a terminal response, the dispatcher
// reports no match and the transport falls back to the real network.
//
// Within a single dispatch everything is strictly sequential: each
// handler runs to completion before the next rule is consulted.
// Dispatches for different requests may interleave freely and always
// observe the latest registry state.
package dispatch
