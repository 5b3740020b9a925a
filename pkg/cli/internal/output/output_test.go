package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"rules": 2}))
	assert.Equal(t, "{\n  \"rules\": 2\n}\n", buf.String())
}

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	w := Table(&buf)
	row := func(a, b string) {
		_, err := w.Write([]byte(a + "\t" + b + "\n"))
		require.NoError(t, err)
	}
	row("KIND", "PATTERN")
	row("exact", "http://x/a")
	require.NoError(t, w.Flush())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	// Both rows start their second column at the same offset.
	assert.Equal(t, bytes.Index(lines[0], []byte("PATTERN")), bytes.Index(lines[1], []byte("http")))
}

func TestWarnPrefix(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%s declares no rules", "a.yaml")
	assert.Equal(t, "Warning: a.yaml declares no rules\n", buf.String())
}
