// Package errors holds the sentinel errors of the CLI and the exit-code
// plumbing between commands and main.
//
// User-input errors carry remediation hints (cockroachdb/errors hints) and an
// exit code of zero. Failures of the generation run itself are reported and
// also exit with zero; errors without an attached code exit with 1.
package errors

import (
	"github.com/cockroachdb/errors"
)

// User-input errors.
var (
	ErrMissingName        = errors.New("component name is required")
	ErrParentDirNotFound  = errors.New("parent directory does not exist")
	ErrComponentExists    = errors.New("component already exists")
	ErrInvalidName        = errors.New("invalid component name")
	ErrUnknownTemplateSet = errors.New("unknown template set")
)

// errUserInput marks errors produced by UserError.
var errUserInput = errors.New("user input")

// ErrTemplateMissing marks a template that is absent from the binary.
var ErrTemplateMissing = errors.New("template not found")

// UserError marks err as caused by user input: it gets the given hints and
// exits with status 0.
func UserError(err error, hints ...string) error {
	if err == nil {
		return nil
	}
	for _, h := range hints {
		err = errors.WithHint(err, h)
	}
	return WithExitCode(errors.Mark(err, errUserInput), 0)
}

// IsUserError reports whether err was produced by UserError.
func IsUserError(err error) bool {
	return errors.Is(err, errUserInput)
}

// Reported marks an unexpected failure that has been printed to the user and
// must not change the exit status.
func Reported(err error) error {
	return WithExitCode(err, 0)
}

// Hints returns every hint attached anywhere in the chain of err.
func Hints(err error) []string {
	return errors.GetAllHints(err)
}
