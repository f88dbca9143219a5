package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resumemcp/internal/adapters/filesystem"
	mcpadapter "resumemcp/internal/adapters/mcp"
	"resumemcp/internal/adapters/sqlite"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/logger"
	"resumemcp/internal/metrics"
)

var (
	sqlitePath  string
	metricsFile string
	sequential  bool
	jsonSummary bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the static MCP tree",
	Long: `Load the resume document, build the relation indices, precompute every
query answer and write the output tree. Files whose content did not change
are left untouched, so reruns on the same input are byte-identical.

Examples:
  resumemcp generate
  resumemcp generate -i resume.yaml -o ./public
  resumemcp generate --sqlite resume.db --metrics-file /var/lib/node_exporter/resumemcp.prom`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		flags := cmd.Flags()
		if flags.Changed("sqlite") {
			cfg.SQLite.Enabled = true
			cfg.SQLite.Path = sqlitePath
		}
		if flags.Changed("metrics-file") {
			cfg.Metrics.Enabled = true
			cfg.Metrics.Textfile = metricsFile
		}
		if sequential {
			cfg.Parallel = false
		}

		log := logger.WithComponent("generate")
		store := filesystem.NewStore(cfg.OutputDir)

		var opts []commands.GenerateOption
		if cfg.SQLite.Enabled {
			catalog := sqlite.NewCatalog()
			if err := catalog.Open(cfg.SQLite.Path); err != nil {
				return err
			}
			defer catalog.Close()
			opts = append(opts, commands.WithCatalog(catalog))
		}
		if cfg.Metrics.Enabled {
			opts = append(opts, commands.WithRecorder(metrics.New(cfg.Metrics.Textfile)))
		}

		generate := commands.NewGenerateCommand(
			commands.NewPrepareCommand(filesystem.NewLoader(), cfg.Input, cfg.Parallel, log),
			mcpadapter.NewSiteWriter(store, logger.WithComponent("site")),
			store.Root(),
			log,
			opts...,
		)
		result, err := generate.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if jsonSummary {
			data, err := mcpadapter.EncodeDocument(result.Stats)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(data))
			return nil
		}

		fmt.Println(result.Message)
		s := result.Stats
		fmt.Printf("  experiences: %d  projects: %d  skills: %d  clusters: %d\n",
			s.Experiences, s.Projects, s.Skills, s.Clusters)
		if s.Duplicates > 0 {
			fmt.Printf("  duplicate ids: %d (last occurrence wins)\n", s.Duplicates)
		}
		fmt.Printf("  run %s in %s\n", s.RunID, s.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also export the catalog to this SQLite database")
	generateCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write run metrics to this Prometheus textfile")
	generateCmd.Flags().BoolVar(&sequential, "sequential", false, "run precompute passes one after another")
	generateCmd.Flags().BoolVar(&jsonSummary, "json", false, "print the run summary as JSON")
}
