package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"resumemcp/internal/application"
	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

// Prepared is a loaded, validated and fully precomputed resume
type Prepared struct {
	Resume     *domain.Resume
	Index      *domain.ResumeIndex
	Answers    *precompute.Result
	Duplicates []domain.DuplicateID
}

// PrepareCommand loads the input document and computes every answer in memory
type PrepareCommand struct {
	loader    ports.DocumentLoader
	log       zerolog.Logger
	InputPath string
	Parallel  bool
}

// NewPrepareCommand creates a new PrepareCommand
func NewPrepareCommand(loader ports.DocumentLoader, inputPath string, parallel bool, log zerolog.Logger) *PrepareCommand {
	return &PrepareCommand{
		loader:    loader,
		log:       log,
		InputPath: inputPath,
		Parallel:  parallel,
	}
}

// Validate checks the command arguments
func (c *PrepareCommand) Validate() error {
	return application.ValidateRequired("input", c.InputPath)
}

// Execute runs load, validate, index and precompute
func (c *PrepareCommand) Execute(ctx context.Context) (*Prepared, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.loader.Load(c.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	resume := &doc.Resume
	c.log.Info().
		Str("input", c.InputPath).
		Int("experiences", len(resume.Experiences)).
		Int("projects", len(resume.Projects)).
		Int("skills", len(resume.Skills)).
		Msg("document loaded")

	if err := application.ValidateResume(resume); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", c.InputPath, err)
	}

	dups := resume.DuplicateIDs()
	for _, d := range dups {
		c.log.Warn().
			Str("kind", string(d.Kind)).
			Str("id", d.ID).
			Int("count", d.Count).
			Msg("duplicate id, last occurrence wins")
	}

	index := domain.BuildIndex(resume)
	c.log.Info().
		Int("skill_to_projects", len(index.SkillToProjects)).
		Int("skill_to_experiences", len(index.SkillToExperiences)).
		Int("project_to_experiences", len(index.ProjectToExperiences)).
		Msg("index built")

	engine := precompute.NewEngine(resume, index,
		precompute.WithParallel(c.Parallel),
		precompute.WithLogger(c.log),
	)
	answers, err := engine.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to precompute answers: %w", err)
	}
	c.log.Info().
		Int("shared_skill_pairs", len(answers.SharedSkills)).
		Int("skill_clusters", len(answers.SkillClusters)).
		Msg("answers precomputed")

	return &Prepared{
		Resume:     resume,
		Index:      index,
		Answers:    answers,
		Duplicates: dups,
	}, nil
}
