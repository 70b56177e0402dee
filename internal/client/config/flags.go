package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/flagx"
)

// knownFlags are the short flags parseFlags owns; -c/-config belongs to the
// JSON loader.
var knownFlags = []string{"-a", "-d", "-p", "-i", "-o", "-l"}

// parseFlags overlays command-line flags on cfg:
//
//	-a string   backend base URL
//	-d string   path of the local SQLite database
//	-p string   default generation provider
//	-i int      online check interval in seconds, 0 disables the watcher
//	-o string   directory for exported documents
//	-l string   log level (debug, info, warn, error)
//
// Any other argument is dropped by flagx.FilterArgs before parsing.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("sprintpilot", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.DefaultProvider, "p", cfg.DefaultProvider, "default generation provider (ollama, groq, openai)")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for exported documents")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	seconds := fs.Int("i", int(cfg.OnlineCheckInterval/time.Second), "online check interval in seconds")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], knownFlags)); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*seconds) * time.Second
}
