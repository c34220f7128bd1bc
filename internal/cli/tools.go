package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golovatskygroup/talos-mcp/internal/catalog"
)

var toolsOutput string

// toolsCmd prints the tool catalog without starting a server, which
// is handy when writing client configurations.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	switch toolsOutput {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.All())
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, tool := range catalog.All() {
			fmt.Fprintf(w, "%s\t%s\n", tool.Name, tool.Description)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format: %s", toolsOutput)
	}
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsOutput, "output", "o", "table", "Output format: table | json")
	rootCmd.AddCommand(toolsCmd)
}
