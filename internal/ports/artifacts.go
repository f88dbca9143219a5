package ports

import (
	"context"

	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
)

// ArtifactStore persists generated artifacts addressed by a slash-separated
// path relative to the output root.
type ArtifactStore interface {
	// Put stores data at path. It reports whether anything was written; a
	// store may skip writes whose content is already present.
	Put(ctx context.Context, path string, data []byte) (bool, error)
}

// DirMaker is implemented by stores with real directories, so that empty
// tool directories still exist in the output tree.
type DirMaker interface {
	MakeDir(path string) error
}

// ArtifactReader reads back a generated tree.
type ArtifactReader interface {
	// Get returns the artifact at path, or an error matching
	// application.ErrNotFound.
	Get(path string) ([]byte, error)

	// Walk visits every artifact in ascending path order.
	Walk(ctx context.Context, fn func(path string, data []byte) error) error
}

// SiteWriter renders the precomputed answers into an artifact tree.
type SiteWriter interface {
	Write(ctx context.Context, resume *domain.Resume, result *precompute.Result) (domain.ArtifactStats, error)
}
