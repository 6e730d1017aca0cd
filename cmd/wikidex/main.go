package main

import (
	"os"

	"github.com/wikidex/wikidex-cli/internal/adapters/driving/cli"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
