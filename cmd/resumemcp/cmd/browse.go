package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"resumemcp/internal/adapters/editor"
	"resumemcp/internal/adapters/filesystem"
	"resumemcp/internal/adapters/tui"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/logger"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the precomputed answers interactively",
	Long: `Precompute the answers of the input document in memory and open an
interactive browser: pick a tool, filter its keys, read the answer, copy
the path of the file that serves it or open that file once generated.

Nothing is written to the output directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		prepare := commands.NewPrepareCommand(filesystem.NewLoader(), cfg.Input, cfg.Parallel, logger.WithComponent("browse"))
		prepared, err := prepare.Execute(cmd.Context())
		if err != nil {
			return err
		}

		app := tui.NewApp(prepared.Answers, cfg.OutputDir, editor.NewOpener())
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
