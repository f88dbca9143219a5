package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

// PublishCommand copies a generated tree to another artifact store
type PublishCommand struct {
	source ports.ArtifactReader
	target ports.ArtifactStore
	log    zerolog.Logger
	Target string
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(source ports.ArtifactReader, target ports.ArtifactStore, targetName string, log zerolog.Logger) *PublishCommand {
	return &PublishCommand{
		source: source,
		target: target,
		log:    log,
		Target: targetName,
	}
}

// Execute uploads every artifact under its relative path
func (c *PublishCommand) Execute(ctx context.Context) (*domain.PublishStats, error) {
	start := time.Now()

	// Refuse to publish something that was never generated
	if _, err := c.source.Get(precompute.ManifestPath); err != nil {
		return nil, fmt.Errorf("no generated tree to publish: %w", err)
	}

	stats := &domain.PublishStats{Target: c.Target}
	err := c.source.Walk(ctx, func(path string, data []byte) error {
		written, err := c.target.Put(ctx, path, data)
		if err != nil {
			return err
		}
		if written {
			stats.Uploaded++
			c.log.Debug().Str("path", path).Msg("artifact uploaded")
		} else {
			stats.Skipped++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish to %s: %w", c.Target, err)
	}

	stats.Duration = time.Since(start)
	c.log.Info().
		Str("target", c.Target).
		Int("uploaded", stats.Uploaded).
		Int("skipped", stats.Skipped).
		Msg("tree published")
	return stats, nil
}
