package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getmockd/intercept/pkg/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArgsMixesFilesAndGlobs(t *testing.T) {
	dir := t.TempDir()
	direct := writeFixture(t, dir, "direct.yaml",
		"kind: exact\npattern: http://x/a\nmethod: GET\nresponse: {status: 200}\n")
	writeFixture(t, dir, "glob1.yml",
		"kind: template\npattern: /b\nmethod: GET\nresponse: {status: 200}\n")
	writeFixture(t, dir, "glob2.yml",
		"kind: template\npattern: /c\nmethod: GET\nresponse: {status: 200}\n")

	files, err := loadArgs([]string{direct, filepath.Join(dir, "*.yml")})
	require.NoError(t, err)
	require.Len(t, files, 3)

	// Argument order first, then sorted glob matches.
	assert.Equal(t, "http://x/a", files[0].Rules[0].Pattern)
	assert.Equal(t, "/b", files[1].Rules[0].Pattern)
	assert.Equal(t, "/c", files[2].Rules[0].Pattern)
}

func TestLoadArgsMissingFile(t *testing.T) {
	_, err := loadArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestListedRule(t *testing.T) {
	f := &fixture.File{Path: "users.yaml"}

	r := listedRule(f, fixture.Spec{
		Kind: "template", Host: "api.example.com", Pattern: "/users/:id", Method: "GET",
		Response: &fixture.ResponseSpec{},
	})
	assert.Equal(t, "users.yaml", r.File)
	assert.Equal(t, 200, r.Status, "zero status reads as 200")
	assert.False(t, r.PassThrough)

	r = listedRule(f, fixture.Spec{
		Kind: "regex", Pattern: "^/a$", Method: "POST", PassThrough: true,
	})
	assert.True(t, r.PassThrough)
	assert.Zero(t, r.Status)
}

func TestNewCommandLogger(t *testing.T) {
	ctx := context.Background()

	// Debug logging is off by default and on when asked for.
	assert.False(t, newCommandLogger("info", "text").Enabled(ctx, slog.LevelDebug))
	assert.True(t, newCommandLogger("debug", "json").Enabled(ctx, slog.LevelDebug))
}

func TestResolveBuildInfo(t *testing.T) {
	out := resolveBuildInfo()
	assert.True(t, strings.HasPrefix(out.Go, "go"), "Go version %q", out.Go)
	assert.NotEmpty(t, out.OS)
	assert.NotEmpty(t, out.Arch)
	assert.NotEmpty(t, out.Version)
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "release gets v prefix", input: "1.2.3", want: "v1.2.3"},
		{name: "already prefixed", input: "v2.0.0", want: "v2.0.0"},
		{name: "dev placeholder", input: "dev", want: "dev"},
		{name: "toolchain placeholder", input: "(devel)", want: "(devel)"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayVersion(tt.input))
		})
	}
}
