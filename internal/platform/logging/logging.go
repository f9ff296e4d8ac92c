package logging

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

// New builds the application logger. Accepts trace, debug, info, warn,
// error; unknown input falls back to warn so a TUI session stays quiet.
func New(level string) hclog.Logger {
	parsed := hclog.LevelFromString(level)
	if parsed == hclog.NoLevel {
		parsed = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "wird",
		Level:  parsed,
		Output: os.Stderr,
	})
}
