package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumemcp/internal/adapters/filesystem"
	mcpadapter "resumemcp/internal/adapters/mcp"
	"resumemcp/internal/application/commands"
)

var rawOutput bool

var queryCmd = &cobra.Command{
	Use:   "query <tool> [key...]",
	Short: "Read a precomputed answer from the output tree",
	Long: `Resolve the file that answers a tool call and print its text payload.

Examples:
  resumemcp query get_skills_for_project proj1
  resumemcp query get_shared_skills proj1 proj3
  resumemcp query find_skill_clusters
  resumemcp query get_basic_info --raw`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := filesystem.NewStore(GetConfig().OutputDir)
		result, err := commands.NewQueryCommand(store, args[0], args[1:]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if rawOutput {
			fmt.Println(string(result.Data))
			return nil
		}
		text, err := mcpadapter.DecodeToolResult(result.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", result.Path, err)
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the stored tool result envelope")
}
