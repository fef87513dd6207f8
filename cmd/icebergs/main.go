package main

import (
	"os"

	"github.com/katalvlaran/icebergs/internal/cli"
)

// main is the entrypoint for the icebergs command.
func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
