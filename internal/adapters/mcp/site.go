package mcp

import (
	"context"
	"fmt"
	"path"

	"github.com/rs/zerolog"

	"resumemcp/internal/application"
	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

// SiteWriter lays out the static MCP tree on an artifact store.
type SiteWriter struct {
	store ports.ArtifactStore
	log   zerolog.Logger
}

// Ensure SiteWriter implements ports.SiteWriter
var _ ports.SiteWriter = (*SiteWriter)(nil)

// NewSiteWriter creates a writer over store.
func NewSiteWriter(store ports.ArtifactStore, log zerolog.Logger) *SiteWriter {
	return &SiteWriter{store: store, log: log}
}

// Write renders the manifest, the resource snapshots, every tool answer and
// the relation indices. Keys are visited in ascending order so that reruns
// touch files in the same sequence.
func (w *SiteWriter) Write(ctx context.Context, resume *domain.Resume, result *precompute.Result) (domain.ArtifactStats, error) {
	var stats domain.ArtifactStats

	put := func(kind domain.ArtifactKind, p string, data []byte) error {
		written, err := w.store.Put(ctx, p, data)
		if err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
		stats.Add(kind, written)
		if written {
			w.log.Debug().Str("path", p).Msg("artifact written")
		}
		return nil
	}

	data, err := EncodeManifest(NewManifest())
	if err != nil {
		return stats, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := put(domain.ArtifactManifest, precompute.ManifestPath, data); err != nil {
		return stats, err
	}

	if err := w.writeResources(resume, put); err != nil {
		return stats, err
	}

	for _, tool := range precompute.Tools {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := w.writeTool(tool, resume, result, put); err != nil {
			return stats, err
		}
	}

	indexes := []struct {
		name string
		v    map[string][]string
	}{
		{"skill_to_projects", result.Indexes.SkillToProjects},
		{"skill_to_experiences", result.Indexes.SkillToExperiences},
		{"project_to_experiences", result.Indexes.ProjectToExperiences},
	}
	for _, idx := range indexes {
		data, err := EncodeDocument(nonNilMap(idx.v))
		if err != nil {
			return stats, fmt.Errorf("encoding index %s: %w", idx.name, err)
		}
		if err := put(domain.ArtifactIndex, precompute.IndexPath(idx.name), data); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

type putFunc func(kind domain.ArtifactKind, path string, data []byte) error

func (w *SiteWriter) writeResources(resume *domain.Resume, put putFunc) error {
	payloads := map[string]any{
		"info":        resume.Info,
		"experiences": nonNil(resume.Experiences),
		"projects":    nonNil(resume.Projects),
		"skills":      nonNil(resume.Skills),
	}
	for _, r := range resources {
		data, err := EncodeResource(r.uri, payloads[r.file])
		if err != nil {
			return err
		}
		if err := put(domain.ArtifactResource, precompute.ResourcePath(r.file), data); err != nil {
			return err
		}
	}
	return nil
}

func (w *SiteWriter) writeTool(tool precompute.Tool, resume *domain.Resume, result *precompute.Result, put putFunc) error {
	if tool.Keyed() {
		if err := w.makeDir(tool.Dir()); err != nil {
			return err
		}
	}
	// Pair tools get one directory per first key, even for a project that
	// shares nothing with anyone.
	if tool.Arity() == 2 {
		for _, id := range resume.ProjectIDs() {
			if !application.IsSafeKey(id) {
				return &application.KeyError{Tool: tool.Name, Key: id}
			}
			if err := w.makeDir(path.Join(tool.Dir(), id)); err != nil {
				return err
			}
		}
	}

	keys, err := result.Keys(tool.Name)
	if err != nil {
		return err
	}
	for _, key := range keys {
		p, err := tool.Path(key...)
		if err != nil {
			return err
		}
		payload, err := result.Answer(tool.Name, key...)
		if err != nil {
			return fmt.Errorf("answering %s %v: %w", tool.Name, key, err)
		}
		data, err := EncodeToolResult(payload)
		if err != nil {
			return err
		}
		if err := put(domain.ArtifactTool, p, data); err != nil {
			return err
		}
	}
	return nil
}

func (w *SiteWriter) makeDir(p string) error {
	dm, ok := w.store.(ports.DirMaker)
	if !ok {
		return nil
	}
	if err := dm.MakeDir(p); err != nil {
		return fmt.Errorf("creating %s: %w", p, err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nonNilMap(m map[string][]string) map[string][]string {
	if m == nil {
		return map[string][]string{}
	}
	return m
}
