package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/appointo/internal/flagx"
)

// parseFlags populates Config fields from the flags in args; see the
// package documentation for the list. Flags owned by other loaders are
// filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-t", "-v"}, "-e")

	fs := flag.NewFlagSet("appointo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the SQLite session database")
	fs.BoolVar(&cfg.Ephemeral, "e", cfg.Ephemeral, "keep the session in memory only")
	delayMs := fs.Int("l", int(cfg.LoginDelay/time.Millisecond), "simulated login latency (ms)")
	fs.StringVar(&cfg.TokenMode, "t", cfg.TokenMode, "token format: mock or jwt")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -l only overrides when given, so finer JSON delays survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "l" {
			cfg.LoginDelay = time.Duration(*delayMs) * time.Millisecond
		}
	})
	return nil
}
