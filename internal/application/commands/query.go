package commands

import (
	"context"
	"fmt"

	"resumemcp/internal/application/precompute"
	"resumemcp/internal/ports"
)

// QueryResult holds one stored tool result
type QueryResult struct {
	Path string
	Data []byte
}

// QueryCommand reads the stored answer for a tool and its keys
type QueryCommand struct {
	reader ports.ArtifactReader
	Tool   string
	Keys   []string
}

// NewQueryCommand creates a new QueryCommand
func NewQueryCommand(reader ports.ArtifactReader, tool string, keys []string) *QueryCommand {
	return &QueryCommand{
		reader: reader,
		Tool:   tool,
		Keys:   keys,
	}
}

// Execute resolves the artifact path and reads it
func (c *QueryCommand) Execute(ctx context.Context) (*QueryResult, error) {
	tool, err := precompute.LookupTool(c.Tool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Tool, err)
	}
	path, err := tool.Path(c.Keys...)
	if err != nil {
		return nil, err
	}
	data, err := c.reader.Get(path)
	if err != nil {
		return nil, err
	}
	return &QueryResult{Path: path, Data: data}, nil
}
