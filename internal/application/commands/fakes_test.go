package commands

import (
	"context"
	"errors"
	"sort"

	"resumemcp/internal/application"
	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

type fakeLoader struct {
	doc *domain.Document
	err error
}

func (f *fakeLoader) Load(string) (*domain.Document, error) {
	return f.doc, f.err
}

type fakeWriter struct {
	calls  int
	result *precompute.Result
	err    error
}

func (f *fakeWriter) Write(_ context.Context, r *domain.Resume, res *precompute.Result) (domain.ArtifactStats, error) {
	f.calls++
	f.result = res
	var stats domain.ArtifactStats
	if f.err != nil {
		return stats, f.err
	}
	stats.Add(domain.ArtifactManifest, true)
	for range r.Projects {
		stats.Add(domain.ArtifactTool, f.calls == 1)
	}
	return stats, nil
}

type fakeCatalog struct {
	exported bool
	clusters map[string][]string
}

func (f *fakeCatalog) Open(string) error { return nil }
func (f *fakeCatalog) Close() error      { return nil }
func (f *fakeCatalog) Export(_ context.Context, _ *domain.Resume, _ *domain.ResumeIndex, clusters map[string][]string) error {
	f.exported = true
	f.clusters = clusters
	return nil
}

type fakeCatalogReader struct {
	counts     []ports.TableCount
	categories map[string][]string
	clusters   map[string][]string
	projects   map[string][]string
	err        error
}

func (f *fakeCatalogReader) Counts(context.Context) ([]ports.TableCount, error) {
	return f.counts, f.err
}

func (f *fakeCatalogReader) SkillsByCategory(context.Context) (map[string][]string, error) {
	return f.categories, nil
}

func (f *fakeCatalogReader) Clusters(context.Context) (map[string][]string, error) {
	return f.clusters, nil
}

func (f *fakeCatalogReader) ProjectsForSkill(_ context.Context, skill string) ([]string, error) {
	return f.projects[skill], nil
}

type fakeRecorder struct {
	runs []domain.RunStats
}

func (f *fakeRecorder) RecordRun(stats domain.RunStats) error {
	f.runs = append(f.runs, stats)
	return nil
}

// memTree is an in-memory artifact store and reader.
type memTree struct {
	files  map[string][]byte
	putErr error
}

func newMemTree(files map[string]string) *memTree {
	t := &memTree{files: make(map[string][]byte)}
	for p, s := range files {
		t.files[p] = []byte(s)
	}
	return t
}

func (m *memTree) Put(_ context.Context, p string, data []byte) (bool, error) {
	if m.putErr != nil {
		return false, m.putErr
	}
	if old, ok := m.files[p]; ok && string(old) == string(data) {
		return false, nil
	}
	m.files[p] = data
	return true, nil
}

func (m *memTree) Get(p string) ([]byte, error) {
	data, ok := m.files[p]
	if !ok {
		return nil, application.ErrNotFound
	}
	return data, nil
}

func (m *memTree) Walk(ctx context.Context, fn func(string, []byte) error) error {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(p, m.files[p]); err != nil {
			return err
		}
	}
	return nil
}

var errBoom = errors.New("boom")
