// Package logger configures the process-wide charmbracelet logger.
//
// Diagnostics (which config files were applied, why a formatter was skipped)
// go through this logger on stderr. User-facing progress is printed by the
// reporter package instead.
package logger

import (
	"io"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/agentx-labs/new-component/internal/branding"
)

// ErrInvalidLogLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// DefaultLevel is used when no level is configured.
const DefaultLevel = charm.WarnLevel

// ParseLevel maps a level name to a charm level. An empty name yields
// DefaultLevel.
func ParseLevel(s string) (charm.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultLevel, nil
	}
	if s == "warning" {
		s = "warn"
	}
	lvl, err := charm.ParseLevel(s)
	if err != nil {
		return DefaultLevel, errors.Wrapf(ErrInvalidLogLevel, "%q", s)
	}
	return lvl, nil
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level charm.Level) *charm.Logger {
	return charm.NewWithOptions(w, charm.Options{
		Level:  level,
		Prefix: branding.CLIName(),
	})
}

// Setup installs a logger writing to w at the named level as the default.
func Setup(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	charm.SetDefault(New(w, lvl))
	return err
}

// Debug logs at debug level on the default logger.
func Debug(msg string, keyvals ...any) {
	charm.Default().Debug(msg, keyvals...)
}

// Warn logs at warn level on the default logger.
func Warn(msg string, keyvals ...any) {
	charm.Default().Warn(msg, keyvals...)
}
