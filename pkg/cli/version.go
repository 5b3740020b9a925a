package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/getmockd/intercept/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// resolveBuildInfo combines the build-time injected variables with
// whatever the Go toolchain embedded. Injected values win; embedded
// VCS metadata fills the gaps for plain `go install` builds.
func resolveBuildInfo() VersionOutput {
	out := VersionOutput{
		Version: Version,
		Commit:  Commit,
		Date:    BuildDate,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	if out.Version == "dev" {
		out.Version = info.Main.Version
	}

	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if out.Commit == "none" {
				out.Commit = setting.Value
			}
		case "vcs.time":
			if out.Date == "unknown" {
				out.Date = setting.Value
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		out.Commit += "-dirty"
	}
	return out
}

// displayVersion normalizes a version string for the human-readable
// form: release versions get a "v" prefix, development placeholders
// stay as they are.
func displayVersion(v string) string {
	if v == "" || v == "dev" || v == "(devel)" || v[0] == 'v' {
		return v
	}
	return "v" + v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show intercept version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := resolveBuildInfo()

		if jsonOutput {
			return output.JSON(os.Stdout, out)
		}

		fmt.Printf("intercept %s (%s, %s)\n", displayVersion(out.Version), out.Commit, out.Date)
		fmt.Printf("%s %s/%s\n", out.Go, out.OS, out.Arch)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
