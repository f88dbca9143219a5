package commands

import (
	"context"
	"strings"

	"resumemcp/internal/application/precompute"
	"resumemcp/internal/ports"
)

// ToolSummary describes one tool and how many answers were precomputed for it
type ToolSummary struct {
	Tool    precompute.Tool
	Answers int
}

// ListToolsCommand lists every tool with its answer count
type ListToolsCommand struct {
	answers *precompute.Result
}

// NewListToolsCommand creates a new ListToolsCommand
func NewListToolsCommand(answers *precompute.Result) *ListToolsCommand {
	return &ListToolsCommand{answers: answers}
}

// Execute runs the list tools command
func (c *ListToolsCommand) Execute(ctx context.Context) ([]ToolSummary, error) {
	summaries := make([]ToolSummary, 0, len(precompute.Tools))
	for _, t := range precompute.Tools {
		keys, err := c.answers.Keys(t.Name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ToolSummary{Tool: t, Answers: len(keys)})
	}
	return summaries, nil
}

// ArtifactEntry is one file of a generated tree
type ArtifactEntry struct {
	Path string
	Size int
}

// ListArtifactsCommand lists the files of a generated tree under a prefix
type ListArtifactsCommand struct {
	reader ports.ArtifactReader
	Prefix string
}

// NewListArtifactsCommand creates a new ListArtifactsCommand
func NewListArtifactsCommand(reader ports.ArtifactReader, prefix string) *ListArtifactsCommand {
	return &ListArtifactsCommand{
		reader: reader,
		Prefix: strings.Trim(prefix, "/"),
	}
}

// Execute runs the list artifacts command
func (c *ListArtifactsCommand) Execute(ctx context.Context) ([]ArtifactEntry, error) {
	var entries []ArtifactEntry
	err := c.reader.Walk(ctx, func(path string, data []byte) error {
		if c.Prefix != "" && path != c.Prefix && !strings.HasPrefix(path, c.Prefix+"/") {
			return nil
		}
		entries = append(entries, ArtifactEntry{Path: path, Size: len(data)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
