// Package failopen implements the fallback policy for non-essential steps:
// try the operation, and on any failure use a designated default.
package failopen

import (
	"github.com/agentx-labs/new-component/internal/logger"
)

// Or returns v when err is nil and def otherwise. A swallowed error is
// logged at debug level under msg together with keyvals.
func Or[T any](v T, err error, def T, msg string, keyvals ...any) T {
	if err == nil {
		return v
	}
	logger.Debug(msg, append(keyvals, "err", err)...)
	return def
}

// Call runs fn and applies Or to its result.
func Call[T any](fn func() (T, error), def T, msg string, keyvals ...any) T {
	v, err := fn()
	return Or(v, err, def, msg, keyvals...)
}
