package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getmockd/intercept/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// jsonOutput is the persistent --json flag shared by subcommands.
	jsonOutput bool

	// logLevel and logFormat configure the command logger.
	logLevel  string
	logFormat string

	// log is the command logger, rebuilt from the persistent flags
	// before any subcommand runs.
	log = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intercept",
	Short: "intercept is a tool for HTTP interception fixture files",
	Long: `intercept works with fixture files for the intercept library: YAML
documents that declare which outgoing HTTP requests a test should
divert and what canned responses they receive.

Use 'validate' to check fixture files before a test run and 'list' to
see every rule they declare in load order.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = newCommandLogger(logLevel, logFormat)
	},
}

// newCommandLogger builds the logger every subcommand shares. Logs go
// to stderr so they never mix with command output on stdout.
func newCommandLogger(level, format string) *slog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	cfg.Format = logging.ParseFormat(format)
	return logging.New(cfg)
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
}
