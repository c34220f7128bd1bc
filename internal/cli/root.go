// Package cli wires the cobra command tree for the talos-mcp binary.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Flag values shared by the root and serve commands. Empty means the
// flag was not given; configuration file values then apply.
var (
	cfgFile          string
	flagTalosconfig  string
	flagTalosctlPath string
	flagAuditDB      string
	flagLogLevel     string
	flagLogFile      string
)

// rootCmd is the base command. Running it without a subcommand starts
// the MCP server on stdio, so the binary can be dropped straight into
// an MCP client's server configuration.
var rootCmd = &cobra.Command{
	Use:   "talos-mcp",
	Short: "MCP server exposing talosctl as callable tools",
	Long: `talos-mcp speaks the Model Context Protocol over stdio and turns each
request into a talosctl invocation against a Talos Linux cluster.

Clients send line-delimited JSON-RPC 2.0 on stdin and read responses
from stdout. Diagnostics go to stderr or a log file, never stdout.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

// SetVersion sets the version reported by the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the command tree. Called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "talos-mcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero.
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to a YAML configuration file")
	pf.StringVar(&flagTalosconfig, "talosconfig", "", "Path to the talosconfig file (overrides config and TALOSCONFIG)")
	pf.StringVar(&flagTalosctlPath, "talosctl-path", "", "Path to the talosctl binary (default \"talosctl\")")
	pf.StringVar(&flagAuditDB, "audit-db", "", "Path to the SQLite invocation log (disabled when empty)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, or error (default \"info\")")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file with rotation instead of stderr")

	rootCmd.AddCommand(newVersionCmd())
}
