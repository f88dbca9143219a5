package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resumemcp/internal/application"
	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

// Loader reads the input document from disk. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
type Loader struct{}

// Ensure Loader implements DocumentLoader
var _ ports.DocumentLoader = Loader{}

// NewLoader creates a document loader
func NewLoader() Loader {
	return Loader{}
}

// Load decodes the {"resume": {...}} wrapper at path
func (Loader) Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	var doc domain.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", application.ErrMalformedDocument, path, err)
	}
	normalize(&doc.Resume)
	return &doc, nil
}

// normalize converts timestamps to UTC and replaces absent lists and maps with
// empty ones, so every payload carries arrays and objects instead of null.
func normalize(r *domain.Resume) {
	if r.Info.Links == nil {
		r.Info.Links = map[string]string{}
	}
	if r.Experiences == nil {
		r.Experiences = []domain.Experience{}
	}
	if r.Projects == nil {
		r.Projects = []domain.Project{}
	}
	if r.Skills == nil {
		r.Skills = []domain.Skill{}
	}

	for i := range r.Experiences {
		e := &r.Experiences[i]
		e.StartDate = e.StartDate.UTC()
		if e.EndDate != nil {
			end := e.EndDate.UTC()
			e.EndDate = &end
		}
		if e.Projects == nil {
			e.Projects = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Skills == nil {
			r.Projects[i].Skills = []string{}
		}
	}
}
