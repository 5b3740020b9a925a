package fixture

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/getmockd/intercept/pkg/intercept"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleRule(t *testing.T) {
	f, err := Parse([]byte(`
kind: exact
pattern: http://x/a
method: GET
response:
  status: 200
  text: hello
`))
	require.NoError(t, err)
	require.Len(t, f.Rules, 1)

	s := f.Rules[0]
	assert.Equal(t, "exact", s.Kind)
	assert.Equal(t, "http://x/a", s.Pattern)
	assert.Equal(t, "GET", s.Method)
	require.NotNil(t, s.Response)
	assert.Equal(t, 200, s.Response.Status)
	require.NotNil(t, s.Response.Text)
	assert.Equal(t, "hello", *s.Response.Text)
}

func TestParseRuleArray(t *testing.T) {
	f, err := Parse([]byte(`
- kind: template
  host: api.example.com
  pattern: /users/:id
  method: GET
  response:
    json:
      name: alice
- kind: regex
  pattern: ^/search/(.+)$
  method: POST
  passThrough: true
`))
	require.NoError(t, err)
	require.Len(t, f.Rules, 2)
	assert.Equal(t, "template", f.Rules[0].Kind)
	assert.Equal(t, "api.example.com", f.Rules[0].Host)
	assert.True(t, f.Rules[1].PassThrough)
}

func TestParseExpandsEnv(t *testing.T) {
	t.Setenv("FIXTURE_HOST", "staging.example.com")
	f, err := Parse([]byte(`
kind: template
host: ${FIXTURE_HOST}
pattern: /ping
method: GET
response: {status: 204}
`))
	require.NoError(t, err)
	assert.Equal(t, "staging.example.com", f.Rules[0].Host)
}

func TestParseAssignsSourceID(t *testing.T) {
	doc := []byte("kind: exact\npattern: http://x/a\nmethod: GET\nresponse: {status: 200}\n")

	a, err := Parse(doc)
	require.NoError(t, err)
	b, err := Parse(doc)
	require.NoError(t, err)

	// Each load gets its own identity, even for identical content.
	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse([]byte("kind: [unclosed"))
	assert.Error(t, err)
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	write := func(rel, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644))
	}
	write("b.yaml", "kind: exact\npattern: http://x/b\nmethod: GET\nresponse: {status: 200}\n")
	write("a.yaml", "kind: exact\npattern: http://x/a\nmethod: GET\nresponse: {status: 200}\n")
	write("nested/c.yaml", "kind: exact\npattern: http://x/c\nmethod: GET\nresponse: {status: 200}\n")

	files, err := LoadGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	// Deterministic path order.
	assert.Equal(t, "http://x/a", files[0].Rules[0].Pattern)
	assert.Equal(t, "http://x/b", files[1].Rules[0].Pattern)
	assert.Equal(t, "http://x/c", files[2].Rules[0].Pattern)
	assert.NotEmpty(t, files[0].Path)
}

func TestLoadGlobNoMatches(t *testing.T) {
	_, err := LoadGlob(filepath.Join(t.TempDir(), "*.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	text := "ok"
	badB64 := "!!! not base64 !!!"

	tests := []struct {
		name    string
		spec    Spec
		wantErr string
	}{
		{
			name: "valid exact",
			spec: Spec{Kind: "exact", Pattern: "http://x/a", Method: "GET",
				Response: &ResponseSpec{Status: 200, Text: &text}},
		},
		{
			name: "valid pass-through with predicate",
			spec: Spec{Kind: "template", Pattern: "/a/:id", Method: "get",
				When: `params.id == "1"`, PassThrough: true},
		},
		{
			name:    "unknown kind",
			spec:    Spec{Kind: "glob", Pattern: "/a/*", Method: "GET", PassThrough: true},
			wantErr: "unknown kind",
		},
		{
			name:    "unknown method",
			spec:    Spec{Kind: "template", Pattern: "/a", Method: "FETCH", PassThrough: true},
			wantErr: "unknown HTTP method",
		},
		{
			name:    "missing pattern",
			spec:    Spec{Kind: "template", Method: "GET", PassThrough: true},
			wantErr: "pattern is required",
		},
		{
			name:    "bad regex",
			spec:    Spec{Kind: "regex", Pattern: "([", Method: "GET", PassThrough: true},
			wantErr: "not a valid regex",
		},
		{
			name:    "host on exact rule",
			spec:    Spec{Kind: "exact", Host: "x", Pattern: "http://x/a", Method: "GET", PassThrough: true},
			wantErr: "host",
		},
		{
			name:    "bad predicate",
			spec:    Spec{Kind: "template", Pattern: "/a", Method: "GET", When: "((", PassThrough: true},
			wantErr: "when predicate",
		},
		{
			name: "status out of range",
			spec: Spec{Kind: "template", Pattern: "/a", Method: "GET",
				Response: &ResponseSpec{Status: 42}},
			wantErr: "out of range",
		},
		{
			name: "two body forms",
			spec: Spec{Kind: "template", Pattern: "/a", Method: "GET",
				Response: &ResponseSpec{Text: &text, JSON: map[string]any{"a": 1}}},
			wantErr: "at most one",
		},
		{
			name: "bad base64",
			spec: Spec{Kind: "template", Pattern: "/a", Method: "GET",
				Response: &ResponseSpec{Base64: &badB64}},
			wantErr: "base64",
		},
		{
			name: "passThrough with response",
			spec: Spec{Kind: "template", Pattern: "/a", Method: "GET",
				PassThrough: true, Response: &ResponseSpec{Status: 200}},
			wantErr: "mutually exclusive",
		},
		{
			name:    "neither passThrough nor response",
			spec:    Spec{Kind: "template", Pattern: "/a", Method: "GET"},
			wantErr: "response is required",
		},
		{
			name: "negative delay",
			spec: Spec{Kind: "template", Pattern: "/a", Method: "GET",
				Response: &ResponseSpec{DelayMs: -5}},
			wantErr: "negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileValidateNamesRuleIndex(t *testing.T) {
	f := &File{Rules: []Spec{
		{Kind: "exact", Pattern: "http://x/a", Method: "GET", PassThrough: true},
		{Kind: "nope", Pattern: "/a", Method: "GET", PassThrough: true},
	}}
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1")
}

func newInterceptor(t *testing.T) *intercept.Interceptor {
	t.Helper()
	ic := intercept.New(intercept.WithNetworkDisabled())
	ic.Start()
	t.Cleanup(ic.Teardown)
	return ic
}

func TestApplyRegistersRules(t *testing.T) {
	f, err := Parse([]byte(`
- kind: template
  host: api.example.com
  pattern: /users/:id
  method: GET
  response:
    status: 200
    json:
      name: alice
- kind: exact
  pattern: http://x/bin
  method: GET
  response:
    status: 201
    headers: {X-Kind: binary}
    base64: 3q0=
`))
	require.NoError(t, err)

	ic := newInterceptor(t)
	require.NoError(t, f.Apply(ic))
	require.Len(t, ic.Rules(), 2)

	resp, err := ic.Client().Get("http://api.example.com/users/7")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"alice"}`, string(body))
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	resp, err = ic.Client().Get("http://x/bin")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "binary", resp.Header.Get("X-Kind"))
	assert.Equal(t, []byte{0xde, 0xad}, body)
}

func TestApplyRejectsInvalidFile(t *testing.T) {
	f := &File{Rules: []Spec{{Kind: "nope", Pattern: "/a", Method: "GET", PassThrough: true}}}
	assert.Error(t, f.Apply(intercept.New()))
}

func TestApplyPredicate(t *testing.T) {
	f, err := Parse([]byte(`
- kind: template
  pattern: /users/:id
  method: GET
  when: 'params.id == "42"'
  response:
    status: 200
    text: the answer
- kind: template
  pattern: /users/:id
  method: GET
  response:
    status: 404
    text: who?
`))
	require.NoError(t, err)

	ic := newInterceptor(t)
	require.NoError(t, f.Apply(ic))

	resp, err := ic.Client().Get("http://h/users/42")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "the answer", string(body))

	// Predicate false: the first rule passes through to the second.
	resp, err = ic.Client().Get("http://h/users/7")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "who?", string(body))
}

func TestApplyPredicateOverHeadersAndQuery(t *testing.T) {
	f, err := Parse([]byte(`
kind: template
pattern: /search
method: GET
when: 'query.q == "go" && header.Authorization != ""'
response: {status: 200, text: found}
`))
	require.NoError(t, err)

	ic := newInterceptor(t)
	require.NoError(t, f.Apply(ic))

	req, _ := http.NewRequest("GET", "http://h/search?q=go", nil)
	req.Header.Set("Authorization", "Bearer tok")
	resp, err := ic.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Without the header the rule passes through; network is disabled,
	// so the request fails.
	_, err = ic.Client().Get("http://h/search?q=go")
	assert.ErrorIs(t, err, intercept.ErrNetworkDisabled)
}

func TestApplyDelay(t *testing.T) {
	f, err := Parse([]byte(`
kind: exact
pattern: http://x/slow
method: GET
response: {status: 200, delayMs: 30}
`))
	require.NoError(t, err)

	ic := newInterceptor(t)
	require.NoError(t, f.Apply(ic))

	resp, err := ic.Client().Get("http://x/slow")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
