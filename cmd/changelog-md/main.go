package main

import (
	"os"

	"github.com/changelog-md/changelog-md/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
