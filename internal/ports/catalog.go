package ports

import (
	"context"

	"resumemcp/internal/domain"
)

// Catalog is a queryable relational copy of the resume, its indices and its
// skill clusters. Each export replaces the previous contents.
type Catalog interface {
	// Lifecycle
	Open(path string) error
	Close() error

	Export(ctx context.Context, resume *domain.Resume, index *domain.ResumeIndex, clusters map[string][]string) error
}

// TableCount is the number of rows in one catalog table.
type TableCount struct {
	Table string
	Rows  int
}

// CatalogReader reads back a previously exported catalog.
type CatalogReader interface {
	Counts(ctx context.Context) ([]TableCount, error)
	SkillsByCategory(ctx context.Context) (map[string][]string, error)
	Clusters(ctx context.Context) (map[string][]string, error)
	ProjectsForSkill(ctx context.Context, skillID string) ([]string, error)
}

// RunRecorder receives the summary of every successful generation run.
type RunRecorder interface {
	RecordRun(stats domain.RunStats) error
}
