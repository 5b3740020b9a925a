package cli

import (
	"fmt"
	"os"

	"github.com/getmockd/intercept/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

var validateVerbose bool

// ValidateResult is the JSON output for one validated file.
type ValidateResult struct {
	Path   string `json:"path"`
	Source string `json:"source"`
	Rules  int    `json:"rules"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <file|glob>...",
	Short: "Validate fixture files",
	Long: `Validate fixture files without registering anything.

Each file is parsed and every rule checked: known kind and method, a
usable pattern (parseable URL or compilable regex), a well-formed
response, and a compilable when predicate. The command exits non-zero
on the first invalid file.`,
	Example: `  # Validate one file
  intercept validate testdata/users.yaml

  # Validate a whole tree of fixtures
  intercept validate 'testdata/**/*.yaml'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := loadArgs(args)
		if err != nil {
			return err
		}

		var results []ValidateResult
		for _, f := range files {
			res := ValidateResult{Path: f.Path, Source: f.ID, Rules: len(f.Rules), Valid: true}
			if err := f.Validate(); err != nil {
				res.Valid = false
				res.Error = err.Error()
			}
			log.Debug("validated fixture", "path", f.Path, "source", f.ID, "rules", res.Rules, "valid", res.Valid)
			results = append(results, res)
			if len(f.Rules) == 0 {
				output.Warn(os.Stderr, "%s declares no rules", f.Path)
			}
		}

		if jsonOutput {
			if err := output.JSON(os.Stdout, results); err != nil {
				return err
			}
		} else {
			for _, res := range results {
				if !res.Valid {
					fmt.Printf("FAIL  %s\n", res.Path)
					continue
				}
				if validateVerbose {
					fmt.Printf("ok    %s (%d rules)\n", res.Path, res.Rules)
				}
			}
		}

		for _, res := range results {
			if !res.Valid {
				return fmt.Errorf("%s: %s", res.Path, res.Error)
			}
		}
		if !jsonOutput && !validateVerbose {
			fmt.Printf("%d file(s) valid\n", len(results))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateVerbose, "verbose", false, "Show per-file validation detail")
	rootCmd.AddCommand(validateCmd)
}
