// Command watchgate is the command-line interface for the screening engine.
package main

import (
	"os"

	"watchgate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
