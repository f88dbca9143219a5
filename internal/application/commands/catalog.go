package commands

import (
	"context"
	"fmt"

	"resumemcp/internal/ports"
)

// CatalogSummary is what an exported catalog holds
type CatalogSummary struct {
	Tables     []ports.TableCount
	Categories map[string][]string
	Clusters   map[string][]string

	// Set when a skill was asked for
	Skill         string
	SkillProjects []string
}

// ShowCatalogCommand reads back a catalog written by generate
type ShowCatalogCommand struct {
	reader ports.CatalogReader
	Skill  string
}

// NewShowCatalogCommand creates a new ShowCatalogCommand
func NewShowCatalogCommand(reader ports.CatalogReader, skill string) *ShowCatalogCommand {
	return &ShowCatalogCommand{
		reader: reader,
		Skill:  skill,
	}
}

// Execute runs the show catalog command
func (c *ShowCatalogCommand) Execute(ctx context.Context) (*CatalogSummary, error) {
	tables, err := c.reader.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog rows: %w", err)
	}
	categories, err := c.reader.SkillsByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill categories: %w", err)
	}
	clusters, err := c.reader.Clusters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill clusters: %w", err)
	}

	summary := &CatalogSummary{
		Tables:     tables,
		Categories: categories,
		Clusters:   clusters,
	}
	if c.Skill == "" {
		return summary, nil
	}

	projects, err := c.reader.ProjectsForSkill(ctx, c.Skill)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects for %s: %w", c.Skill, err)
	}
	summary.Skill = c.Skill
	summary.SkillProjects = projects
	return summary, nil
}
