package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"resumemcp/internal/adapters/filesystem"
	"resumemcp/internal/adapters/sqlite"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/logger"
)

var listCmd = &cobra.Command{
	Use:   "list [tools|artifacts|catalog]",
	Short: "List tools, generated artifacts or the SQLite catalog",
	Long: `List the precomputed tools of the input document, the files of a
generated tree, or the contents of a catalog exported with generate --sqlite.

Examples:
  resumemcp list tools
  resumemcp list artifacts
  resumemcp list artifacts tools/get_shared_skills
  resumemcp list catalog --skill postgresql`,
}

var listToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List every tool with its arguments and answer count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		prepare := commands.NewPrepareCommand(filesystem.NewLoader(), cfg.Input, cfg.Parallel, logger.WithComponent("list"))
		prepared, err := prepare.Execute(cmd.Context())
		if err != nil {
			return err
		}

		summaries, err := commands.NewListToolsCommand(prepared.Answers).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range summaries {
			params := "-"
			if s.Tool.Keyed() {
				params = strings.Join(s.Tool.Params, ", ")
			}
			fmt.Printf("%-28s %-22s %d\n", s.Tool.Name, params, s.Answers)
		}
		return nil
	},
}

var listArtifactsCmd = &cobra.Command{
	Use:   "artifacts [prefix]",
	Short: "List the files of the output tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var prefix string
		if len(args) == 1 {
			prefix = args[0]
		}

		store := filesystem.NewStore(GetConfig().OutputDir)
		entries, err := commands.NewListArtifactsCommand(store, prefix).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%8d  %s\n", e.Size, e.Path)
		}
		return nil
	},
}

var (
	catalogPath  string
	catalogSkill string
)

var listCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show row counts, skill categories and clusters of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().SQLite.Path
		if cmd.Flags().Changed("sqlite") {
			path = catalogPath
		}

		catalog := sqlite.NewCatalog()
		if err := catalog.OpenExisting(path); err != nil {
			return err
		}
		defer catalog.Close()

		summary, err := commands.NewShowCatalogCommand(catalog, catalogSkill).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Catalog: %s\n\n", catalog.Path())
		for _, t := range summary.Tables {
			fmt.Printf("  %-22s %d\n", t.Table, t.Rows)
		}

		fmt.Println("\nSkills by category:")
		for _, category := range sortedKeys(summary.Categories) {
			fmt.Printf("  %-22s %s\n", category, strings.Join(summary.Categories[category], ", "))
		}

		fmt.Println("\nSkill clusters:")
		if len(summary.Clusters) == 0 {
			fmt.Println("  (none)")
		}
		for _, key := range sortedKeys(summary.Clusters) {
			fmt.Printf("  %-30s %s\n", key, strings.Join(summary.Clusters[key], ", "))
		}

		if summary.Skill != "" {
			fmt.Printf("\nProjects using %s:\n", summary.Skill)
			if len(summary.SkillProjects) == 0 {
				fmt.Println("  (none)")
			}
			for _, p := range summary.SkillProjects {
				fmt.Printf("  %s\n", p)
			}
		}
		return nil
	},
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listToolsCmd)
	listCmd.AddCommand(listArtifactsCmd)
	listCmd.AddCommand(listCatalogCmd)

	listCatalogCmd.Flags().StringVar(&catalogPath, "sqlite", "", "catalog database (default from config)")
	listCatalogCmd.Flags().StringVar(&catalogSkill, "skill", "", "also list the projects using this skill")
}
