package fixture

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/intercept/internal/id"
)

// Parse parses fixture YAML from memory, after environment variable
// expansion. The returned file carries a fresh source ID.
func Parse(data []byte) (*File, error) {
	expanded := os.ExpandEnv(string(data))
	var f File
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	f.ID = id.UUID()
	return &f, nil
}

// Load reads and parses one fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fixture file is empty: %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// LoadGlob expands a doublestar pattern (** supported) and loads every
// matching file, sorted by path so load order is deterministic.
func LoadGlob(pattern string) ([]*File, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixture files match %q", pattern)
	}
	sort.Strings(paths)

	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
