package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"resumemcp/internal/config"
	"resumemcp/internal/logger"
)

var (
	configPath string
	inputPath  string
	outputDir  string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resumemcp",
	Short: "Precompute a static MCP surface for a resume",
	Long: `resumemcp reads a resume document (personal info, experiences, projects
and skills) and writes a tree of static JSON files that answer every
read-only MCP query about it: a manifest, resource snapshots, one tool
result per tool and key, and the relation indices.

Serve the output directory with any static file server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("input") {
			loaded.Input = inputPath
		}
		if flags.Changed("output") {
			loaded.OutputDir = outputDir
		}
		if flags.Changed("log-level") {
			loaded.Logging.Level = logLevel
		}
		cfg = loaded

		logger.Init(cfg.Logging)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a YAML settings file")
	flags.StringVarP(&inputPath, "input", "i", config.DefaultInputPath, "resume document (JSON or YAML)")
	flags.StringVarP(&outputDir, "output", "o", config.DefaultOutputDir, "output directory of the generated tree")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// GetConfig returns the resolved configuration
func GetConfig() *config.Config {
	return cfg
}
