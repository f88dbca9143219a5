package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpadapter "resumemcp/internal/adapters/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version and protocol revision",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (MCP %s)\n", mcpadapter.ServerName, mcpadapter.ServerVersion, mcpadapter.ProtocolVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
