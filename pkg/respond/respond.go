package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getmockd/intercept/pkg/rule"
)

// jsonContentType is the default content type set by JSON.
const jsonContentType = "application/json; charset=utf-8"

// Option adjusts a response under construction.
type Option func(*rule.Response)

// WithStatus sets the status code.
func WithStatus(status int) Option {
	return func(r *rule.Response) { r.StatusCode = status }
}

// WithHeader sets one header.
func WithHeader(name, value string) Option {
	return func(r *rule.Response) { r.Header[name] = value }
}

// WithHeaders sets every header in the map.
func WithHeaders(headers map[string]string) Option {
	return func(r *rule.Response) {
		for name, value := range headers {
			r.Header[name] = value
		}
	}
}

// WithReason sets the status line reason phrase.
func WithReason(reason string) Option {
	return func(r *rule.Response) { r.Reason = reason }
}

func build(status int, body rule.Body, opts []Option) *rule.Response {
	r := &rule.Response{
		StatusCode: status,
		Header:     make(map[string]string),
		Body:       body,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Status builds a response with the given status and no body.
func Status(status int, opts ...Option) *rule.Response {
	return build(status, rule.EmptyBody{}, opts)
}

// Text builds a 200 OK response with a text body.
func Text(text string, opts ...Option) *rule.Response {
	return build(http.StatusOK, rule.TextBody{Text: text}, opts)
}

// Bytes builds a 200 OK response with a raw byte body.
func Bytes(body []byte, opts ...Option) *rule.Response {
	return build(http.StatusOK, rule.BytesBody{Bytes: body}, opts)
}

// Stream builds a 200 OK response whose body is produced lazily: the
// transport reads chunks from the channel and writes them in order
// until it is closed.
func Stream(chunks <-chan []byte, opts ...Option) *rule.Response {
	return build(http.StatusOK, rule.StreamBody{Chunks: chunks}, opts)
}

// JSON builds a 200 OK response with v encoded as JSON and content
// type "application/json; charset=utf-8". Options are applied after
// the default content type, so a caller-supplied Content-Type header
// overrides it. The (response, error) shape lets a handler end with
// `return respond.JSON(v)`.
func JSON(v any, opts ...Option) (*rule.Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON body: %w", err)
	}
	r := build(http.StatusOK, rule.BytesBody{Bytes: data}, nil)
	r.Header["Content-Type"] = jsonContentType
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// PassThrough builds the sentinel that tells the dispatcher to treat
// the rule as not matched and keep scanning.
func PassThrough() *rule.Response {
	return rule.NewPassThrough()
}

// Fixed error helpers. Each carries a default human-readable body and
// the standard reason phrase; options can override any of it.

// BadRequest builds a 400 response.
func BadRequest(opts ...Option) *rule.Response {
	return errorResponse(http.StatusBadRequest, opts)
}

// Unauthorized builds a 401 response.
func Unauthorized(opts ...Option) *rule.Response {
	return errorResponse(http.StatusUnauthorized, opts)
}

// Forbidden builds a 403 response.
func Forbidden(opts ...Option) *rule.Response {
	return errorResponse(http.StatusForbidden, opts)
}

// NotFound builds a 404 response.
func NotFound(opts ...Option) *rule.Response {
	return errorResponse(http.StatusNotFound, opts)
}

// InternalError builds a 500 response.
func InternalError(opts ...Option) *rule.Response {
	return errorResponse(http.StatusInternalServerError, opts)
}

func errorResponse(status int, opts []Option) *rule.Response {
	text := http.StatusText(status)
	r := build(status, rule.TextBody{Text: text}, nil)
	r.Reason = text
	for _, opt := range opts {
		opt(r)
	}
	return r
}
