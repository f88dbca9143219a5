package domain

import "time"

// ArtifactKind groups generated files for reporting.
type ArtifactKind string

const (
	ArtifactManifest ArtifactKind = "manifest"
	ArtifactResource ArtifactKind = "resource"
	ArtifactTool     ArtifactKind = "tool"
	ArtifactIndex    ArtifactKind = "index"
)

// ArtifactStats reports the outcome of writing an output tree.
type ArtifactStats struct {
	Written   int                  `json:"written"`
	Unchanged int                  `json:"unchanged"`
	ByKind    map[ArtifactKind]int `json:"by_kind"`
}

// Add records one artifact.
func (s *ArtifactStats) Add(kind ArtifactKind, written bool) {
	if s.ByKind == nil {
		s.ByKind = make(map[ArtifactKind]int)
	}
	s.ByKind[kind]++
	if written {
		s.Written++
	} else {
		s.Unchanged++
	}
}

// Total is the number of artifacts in the tree.
func (s ArtifactStats) Total() int {
	return s.Written + s.Unchanged
}

// RunStats summarizes one generation run.
type RunStats struct {
	RunID       string        `json:"run_id"`
	Experiences int           `json:"experiences"`
	Projects    int           `json:"projects"`
	Skills      int           `json:"skills"`
	Clusters    int           `json:"clusters"`
	Duplicates  int           `json:"duplicate_ids"`
	Artifacts   ArtifactStats `json:"artifacts"`
	OutputDir   string        `json:"output_dir"`
	Duration    time.Duration `json:"duration_ns"`
	FinishedAt  time.Time     `json:"finished_at"`
}

// PublishStats reports the outcome of uploading an output tree.
type PublishStats struct {
	Target   string        `json:"target"`
	Uploaded int           `json:"uploaded"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration_ns"`
}
