// Package cli defines the Cobra command tree. The root command scaffolds a
// component; the version, templates and config subcommands are informational.
// Commands delegate to internal packages for business logic and only handle
// flag parsing and output.
package cli
