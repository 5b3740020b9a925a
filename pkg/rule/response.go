package rule

// Body is the response body, tagged by representation. The transport
// hook renders each case to bytes on the wire: TextBody as UTF-8,
// BytesBody as-is, StreamBody chunk by chunk, EmptyBody as no body at
// all. The sealed marker keeps rendering a total function over the
// known cases.
type Body interface {
	body()
}

// EmptyBody is a response with no body.
type EmptyBody struct{}

// TextBody is a string body, rendered as UTF-8 bytes.
type TextBody struct {
	Text string
}

// BytesBody is a raw byte body, rendered as-is.
type BytesBody struct {
	Bytes []byte
}

// StreamBody is a lazily produced body: chunks are read from the
// channel and written in order until it is closed. The handler that
// built the response owns the producing side and must close the
// channel when done. If the client abandons the body early, the
// remaining chunks are drained and discarded, so the producer's sends
// always complete.
type StreamBody struct {
	Chunks <-chan []byte
}

func (EmptyBody) body()  {}
func (TextBody) body()   {}
func (BytesBody) body()  {}
func (StreamBody) body() {}

// Response is what a handler answers an intercepted request with.
// Either it is a pass-through sentinel telling the dispatcher to keep
// scanning lower-precedence rules, or it carries a status code,
// headers, an optional reason phrase, and a body. For a pass-through
// response every other field is ignored.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header holds the response headers.
	Header map[string]string

	// Reason is the status line reason phrase. Empty means the
	// standard text for the status code.
	Reason string

	// Body is the tagged response body. Nil is treated as EmptyBody.
	Body Body

	passThrough bool
}

// NewPassThrough builds the pass-through sentinel. Dispatchers treat a
// rule whose handler returns it as if the rule had not matched.
func NewPassThrough() *Response {
	return &Response{passThrough: true}
}

// IsPassThrough reports whether the response is the pass-through
// sentinel.
func (r *Response) IsPassThrough() bool { return r.passThrough }
