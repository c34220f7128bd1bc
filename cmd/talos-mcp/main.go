package main

import "github.com/golovatskygroup/talos-mcp/internal/cli"

// Set via ldflags at build time.
var version = "1.0.0"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
