package cli

import (
	"fmt"
	"os"

	"github.com/getmockd/intercept/pkg/cli/internal/output"
	"github.com/getmockd/intercept/pkg/fixture"
	"github.com/spf13/cobra"
)

// ListedRule is the JSON output for one declared rule.
type ListedRule struct {
	File        string `json:"file"`
	Kind        string `json:"kind"`
	Host        string `json:"host,omitempty"`
	Pattern     string `json:"pattern"`
	Method      string `json:"method"`
	Status      int    `json:"status,omitempty"`
	PassThrough bool   `json:"passThrough,omitempty"`
	When        string `json:"when,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list <file|glob>...",
	Short: "List rules declared by fixture files",
	Long: `List every rule the named fixture files declare, in load order.
Load order is precedence order: when several rules match the same
request, the first listed one answers it.`,
	Example: `  # Table of all rules in a fixture tree
  intercept list 'testdata/**/*.yaml'

  # Machine-readable listing
  intercept list --json testdata/users.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := loadArgs(args)
		if err != nil {
			return err
		}

		var rules []ListedRule
		for _, f := range files {
			log.Debug("loaded fixture", "path", f.Path, "source", f.ID, "rules", len(f.Rules))
			for _, s := range f.Rules {
				rules = append(rules, listedRule(f, s))
			}
		}

		if jsonOutput {
			return output.JSON(os.Stdout, rules)
		}

		w := output.Table(os.Stdout)
		fmt.Fprintln(w, "KIND\tMETHOD\tHOST\tPATTERN\tRESPONSE\tFILE")
		for _, r := range rules {
			host := r.Host
			if host == "" && r.Kind != "exact" {
				host = "*"
			}
			resp := fmt.Sprintf("%d", r.Status)
			if r.PassThrough {
				resp = "pass-through"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Kind, r.Method, host, r.Pattern, resp, r.File)
		}
		return w.Flush()
	},
}

func listedRule(f *fixture.File, s fixture.Spec) ListedRule {
	r := ListedRule{
		File:        f.Path,
		Kind:        s.Kind,
		Host:        s.Host,
		Pattern:     s.Pattern,
		Method:      s.Method,
		PassThrough: s.PassThrough,
		When:        s.When,
	}
	if s.Response != nil {
		r.Status = s.Response.Status
		if r.Status == 0 {
			r.Status = 200
		}
	}
	return r
}

func init() {
	rootCmd.AddCommand(listCmd)
}
