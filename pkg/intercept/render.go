package intercept

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/getmockd/intercept/pkg/rule"
)

// render turns a terminal Response into a client-visible
// *http.Response. It is total over the body variants: text is written
// as UTF-8, bytes as-is, streams chunk by chunk, empty as no body. A
// nil body counts as empty.
func render(resp *rule.Response, req *http.Request) (*http.Response, error) {
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	reason := resp.Reason
	if reason == "" {
		reason = http.StatusText(status)
	}

	out := &http.Response{
		Status:     fmt.Sprintf("%d %s", status, reason),
		StatusCode: status,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header, len(resp.Header)),
		Request:    req,
	}
	for name, value := range resp.Header {
		out.Header.Set(name, value)
	}

	switch body := resp.Body.(type) {
	case nil, rule.EmptyBody:
		out.Body = http.NoBody
		out.ContentLength = 0
	case rule.TextBody:
		out.Body = io.NopCloser(strings.NewReader(body.Text))
		out.ContentLength = int64(len(body.Text))
	case rule.BytesBody:
		out.Body = io.NopCloser(bytes.NewReader(body.Bytes))
		out.ContentLength = int64(len(body.Bytes))
	case rule.StreamBody:
		out.Body = &chunkReader{chunks: body.Chunks}
		out.ContentLength = -1
	default:
		return nil, fmt.Errorf("unsupported response body %T", resp.Body)
	}
	return out, nil
}

// chunkReader adapts a chunk channel to io.ReadCloser, delivering each
// chunk in order and reporting EOF when the channel closes.
type chunkReader struct {
	chunks  <-chan []byte
	pending []byte
	once    sync.Once
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		chunk, ok := <-r.chunks
		if !ok {
			return 0, io.EOF
		}
		r.pending = chunk
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Close drains any chunks the client never read, so a producer sending
// on an unbuffered channel is not blocked forever by an abandoned
// response body.
func (r *chunkReader) Close() error {
	r.once.Do(func() {
		go func() {
			for range r.chunks {
			}
		}()
	})
	return nil
}
