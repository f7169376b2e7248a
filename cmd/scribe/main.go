// Command scribe generates researched articles from the command line.
package main

import (
	"os"

	"github.com/scribe-labs/scribe-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
