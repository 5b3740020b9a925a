// Package respond builds the responses handlers answer intercepted
// requests with.
//
// Builders exist per body representation (Text, Bytes, Stream, JSON,
// Status) plus fixed helpers for common error statuses and the
// PassThrough sentinel that tells the dispatcher to keep scanning.
// Options adjust status, headers, and reason phrase:
//
//	return respond.JSON(map[string]int{"id": 1})
//	return respond.Text("gone", respond.WithStatus(410)), nil
//	return respond.PassThrough(), nil
package respond
