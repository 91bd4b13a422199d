package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/credstore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-p string   REPL prompt label
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-f", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text or json)")
	fs.StringVar(&cfg.PromptLabel, "p", cfg.PromptLabel, "REPL prompt label")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
