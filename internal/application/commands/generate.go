package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

// GenerateResult contains the result of a generation run
type GenerateResult struct {
	Stats    domain.RunStats
	Prepared *Prepared
	Message  string
}

// GenerateCommand runs the whole pipeline and writes the static tree
type GenerateCommand struct {
	prepare  *PrepareCommand
	writer   ports.SiteWriter
	catalog  ports.Catalog
	recorder ports.RunRecorder
	log      zerolog.Logger
	now      func() time.Time

	OutputDir string
}

// GenerateOption configures optional sinks of a GenerateCommand
type GenerateOption func(*GenerateCommand)

// WithCatalog exports the resume and its indices to an open catalog after writing
func WithCatalog(catalog ports.Catalog) GenerateOption {
	return func(c *GenerateCommand) {
		c.catalog = catalog
	}
}

// WithRecorder reports the run summary after a successful run
func WithRecorder(recorder ports.RunRecorder) GenerateOption {
	return func(c *GenerateCommand) {
		c.recorder = recorder
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) GenerateOption {
	return func(c *GenerateCommand) {
		c.now = now
	}
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(prepare *PrepareCommand, writer ports.SiteWriter, outputDir string, log zerolog.Logger, opts ...GenerateOption) *GenerateCommand {
	c := &GenerateCommand{
		prepare:   prepare,
		writer:    writer,
		log:       log,
		now:       time.Now,
		OutputDir: outputDir,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	start := c.now()
	runID := uuid.NewString()
	log := c.log.With().Str("run_id", runID).Logger()

	prepared, err := c.prepare.Execute(ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := c.writer.Write(ctx, prepared.Resume, prepared.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to write output tree: %w", err)
	}
	log.Info().
		Str("output", c.OutputDir).
		Int("written", artifacts.Written).
		Int("unchanged", artifacts.Unchanged).
		Msg("artifacts written")

	if c.catalog != nil {
		if err := c.catalog.Export(ctx, prepared.Resume, prepared.Index, prepared.Answers.SkillClusters); err != nil {
			return nil, fmt.Errorf("failed to export catalog: %w", err)
		}
		log.Info().Msg("catalog exported")
	}

	finished := c.now()
	stats := domain.RunStats{
		RunID:       runID,
		Experiences: len(prepared.Resume.Experiences),
		Projects:    len(prepared.Resume.Projects),
		Skills:      len(prepared.Resume.Skills),
		Clusters:    len(prepared.Answers.SkillClusters),
		Duplicates:  len(prepared.Duplicates),
		Artifacts:   artifacts,
		OutputDir:   c.OutputDir,
		Duration:    finished.Sub(start),
		FinishedAt:  finished,
	}

	if c.recorder != nil {
		if err := c.recorder.RecordRun(stats); err != nil {
			return nil, fmt.Errorf("failed to record run metrics: %w", err)
		}
	}

	return &GenerateResult{
		Stats:    stats,
		Prepared: prepared,
		Message: fmt.Sprintf("Generated %d artifacts in %s (%d written, %d unchanged)",
			artifacts.Total(), c.OutputDir, artifacts.Written, artifacts.Unchanged),
	}, nil
}
