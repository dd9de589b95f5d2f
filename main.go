package main

import (
	"os"

	"github.com/agentx-labs/new-component/internal/cli"
	errUtils "github.com/agentx-labs/new-component/internal/errors"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// User-input and generation errors carry exit code 0.
		os.Exit(errUtils.GetExitCode(err))
	}
}
