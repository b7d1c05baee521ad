package main

import (
	"os"

	"github.com/alvivar/jam/internal/cli"
	"github.com/alvivar/jam/internal/output"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
