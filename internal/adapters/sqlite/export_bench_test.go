package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"resumemcp/internal/domain"
	"resumemcp/internal/domain/domaintest"
)

// syntheticResume builds n projects, each using 5 of 40 skills, spread over n/4 experiences
func syntheticResume(n int) *domain.Resume {
	r := &domain.Resume{}
	for i := 0; i < 40; i++ {
		r.Skills = append(r.Skills, domaintest.Skill(fmt.Sprintf("skill%02d", i)))
	}
	for i := 0; i < n; i++ {
		skills := make([]string, 5)
		for j := range skills {
			skills[j] = fmt.Sprintf("skill%02d", (i*7+j*3)%40)
		}
		r.Projects = append(r.Projects, domaintest.Project(fmt.Sprintf("proj%03d", i), skills...))
	}
	for i := 0; i < n/4; i++ {
		var projects []string
		for j := 0; j < 4; j++ {
			projects = append(projects, fmt.Sprintf("proj%03d", i*4+j))
		}
		r.Experiences = append(r.Experiences, domaintest.Experience(fmt.Sprintf("exp%03d", i), projects...))
	}
	return r
}

// BenchmarkExport benchmarks a full catalog export (DB already open)
func BenchmarkExport(b *testing.B) {
	c := NewCatalog()
	if err := c.Open(filepath.Join(b.TempDir(), "bench.db")); err != nil {
		b.Fatalf("failed to open catalog: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			b.Fatalf("failed to close catalog: %v", err)
		}
	}()

	r := syntheticResume(200)
	idx := domain.BuildIndex(r)
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		if err := c.Export(ctx, r, idx, nil); err != nil {
			b.Fatalf("export failed: %v", err)
		}
	}
}
