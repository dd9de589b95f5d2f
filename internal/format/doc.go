// Package format wraps the code formatters used on generated files. Whatever
// the engine, the returned Func never fails: when formatting is impossible the
// input comes back unchanged.
package format
