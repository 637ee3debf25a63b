package main

import (
	"os"

	"github.com/idilsaglam/tasks/internal/cli"
)

func main() {
	// Flags, config and the choice of front end are handled by the runner.
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
