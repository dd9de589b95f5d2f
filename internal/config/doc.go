// Package config resolves the effective settings of a run. Built-in defaults
// are overlaid by an optional user-level override file in the home directory,
// then an optional project-level file in the working directory, then
// NEW_COMPONENT_* environment variables. Override files that are unreadable
// or fail schema validation are skipped, so resolution always succeeds.
package config
