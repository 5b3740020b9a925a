// Package logging configures the structured loggers used across the
// library and the CLI.
//
// It is a thin layer over log/slog: Config selects level, format
// (text or json), and destination; New builds the logger; ParseLevel
// and ParseFormat turn flag or environment strings into the
// corresponding settings. Components accept a *slog.Logger and fall
// back to Nop when none is given, so logging is always optional.
//
//	cfg := logging.DefaultConfig()
//	cfg.Level = logging.ParseLevel("debug")
//	log := logging.New(cfg)
//	log.Info("interception started", "rules", 3)
package logging
