package cli

import (
	"strings"

	"github.com/getmockd/intercept/pkg/fixture"
)

// loadArgs loads every fixture file named by the args, expanding glob
// arguments (** supported). Files load in argument order, globs in
// sorted path order, which is the order rules take precedence in.
func loadArgs(args []string) ([]*fixture.File, error) {
	var files []*fixture.File
	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[{") {
			matched, err := fixture.LoadGlob(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, matched...)
			continue
		}
		f, err := fixture.Load(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
