package domain

import (
	"slices"
	"sort"
)

// ResumeIndex holds the relation indices and identity lookups derived from a Resume.
// It is built once and treated as read-only afterwards.
type ResumeIndex struct {
	// Project ids per skill, in order of first encounter across projects.
	SkillToProjects map[string][]string `json:"skill_to_projects"`
	// Experience ids per skill, sorted and deduplicated.
	SkillToExperiences map[string][]string `json:"skill_to_experiences"`
	// Experience ids per project, in reference order. Not deduplicated.
	ProjectToExperiences map[string][]string `json:"project_to_experiences"`

	Experiences map[string]Experience `json:"-"`
	Projects    map[string]Project    `json:"-"`
	Skills      map[string]Skill      `json:"-"`
}

// BuildIndex derives the relation indices and identity lookups from r.
// It never fails; empty collections produce empty maps.
func BuildIndex(r *Resume) *ResumeIndex {
	idx := &ResumeIndex{
		SkillToProjects:      make(map[string][]string),
		SkillToExperiences:   make(map[string][]string),
		ProjectToExperiences: make(map[string][]string),
		Experiences:          make(map[string]Experience, len(r.Experiences)),
		Projects:             make(map[string]Project, len(r.Projects)),
		Skills:               make(map[string]Skill, len(r.Skills)),
	}

	// Identity lookups, last write wins
	for _, e := range r.Experiences {
		idx.Experiences[e.ID] = e
	}
	for _, p := range r.Projects {
		idx.Projects[p.ID] = p
	}
	for _, s := range r.Skills {
		idx.Skills[s.ID] = s
	}

	for _, p := range r.Projects {
		for _, skillID := range p.Skills {
			idx.SkillToProjects[skillID] = append(idx.SkillToProjects[skillID], p.ID)
		}
	}

	for _, e := range r.Experiences {
		for _, projectID := range e.Projects {
			idx.ProjectToExperiences[projectID] = append(idx.ProjectToExperiences[projectID], e.ID)

			project, ok := idx.Projects[projectID]
			if !ok {
				continue
			}
			for _, skillID := range project.Skills {
				idx.SkillToExperiences[skillID] = append(idx.SkillToExperiences[skillID], e.ID)
			}
		}
	}

	// An experience can reach a skill through several projects.
	for skillID, ids := range idx.SkillToExperiences {
		sort.Strings(ids)
		idx.SkillToExperiences[skillID] = slices.Compact(ids)
	}

	return idx
}

// Experience resolves an experience id.
func (idx *ResumeIndex) Experience(id string) (Experience, bool) {
	e, ok := idx.Experiences[id]
	return e, ok
}

// Project resolves a project id.
func (idx *ResumeIndex) Project(id string) (Project, bool) {
	p, ok := idx.Projects[id]
	return p, ok
}

// Skill resolves a skill id.
func (idx *ResumeIndex) Skill(id string) (Skill, bool) {
	s, ok := idx.Skills[id]
	return s, ok
}

// ResolveSkills maps ids to skills, dropping ids that do not resolve.
func (idx *ResumeIndex) ResolveSkills(ids []string) []Skill {
	return resolve(ids, idx.Skills)
}

// ResolveProjects maps ids to projects, dropping ids that do not resolve.
func (idx *ResumeIndex) ResolveProjects(ids []string) []Project {
	return resolve(ids, idx.Projects)
}

// ResolveExperiences maps ids to experiences, dropping ids that do not resolve.
func (idx *ResumeIndex) ResolveExperiences(ids []string) []Experience {
	return resolve(ids, idx.Experiences)
}

func resolve[T any](ids []string, lookup map[string]T) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := lookup[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
