package precompute

import (
	"sort"

	"resumemcp/internal/domain"
)

// SkillsForProject returns the project's skills in declaration order. Unknown
// projects and unresolved skill ids yield nothing.
func (e *Engine) SkillsForProject(projectID string) []domain.Skill {
	project, ok := e.index.Project(projectID)
	if !ok {
		return []domain.Skill{}
	}
	return e.index.ResolveSkills(project.Skills)
}

// ProjectsUsingSkill returns the projects that declare the skill.
func (e *Engine) ProjectsUsingSkill(skillID string) []domain.Project {
	return e.index.ResolveProjects(e.index.SkillToProjects[skillID])
}

// ExperiencesUsingSkill returns the experiences that reach the skill through
// any of their projects, ordered by experience id.
func (e *Engine) ExperiencesUsingSkill(skillID string) []domain.Experience {
	return e.index.ResolveExperiences(e.index.SkillToExperiences[skillID])
}

// SharedSkills returns the skills declared by both projects, ordered by skill id.
// The result does not depend on argument order.
func (e *Engine) SharedSkills(projectA, projectB string) []domain.Skill {
	a, okA := e.index.Project(projectA)
	b, okB := e.index.Project(projectB)
	if !okA || !okB {
		return []domain.Skill{}
	}

	inA := make(map[string]bool, len(a.Skills))
	for _, id := range a.Skills {
		inA[id] = true
	}
	seen := make(map[string]bool, len(b.Skills))
	shared := make([]string, 0)
	for _, id := range b.Skills {
		if inA[id] && !seen[id] {
			seen[id] = true
			shared = append(shared, id)
		}
	}
	sort.Strings(shared)

	return e.index.ResolveSkills(shared)
}

// ExperienceDetails returns the full experience.
func (e *Engine) ExperienceDetails(experienceID string) (domain.Experience, bool) {
	return e.index.Experience(experienceID)
}

// ProjectDetails returns the full project.
func (e *Engine) ProjectDetails(projectID string) (domain.Project, bool) {
	return e.index.Project(projectID)
}

// BasicInfo returns the document's personal information.
func (e *Engine) BasicInfo() domain.PersonalInfo {
	return e.resume.Info
}

// Indexes returns the three relation indices.
func (e *Engine) Indexes() IndexSnapshot {
	return IndexSnapshot{
		SkillToProjects:      e.index.SkillToProjects,
		SkillToExperiences:   e.index.SkillToExperiences,
		ProjectToExperiences: e.index.ProjectToExperiences,
	}
}

// IndexSnapshot is the serializable form of the relation indices.
type IndexSnapshot struct {
	SkillToProjects      map[string][]string `json:"skill_to_projects"`
	SkillToExperiences   map[string][]string `json:"skill_to_experiences"`
	ProjectToExperiences map[string][]string `json:"project_to_experiences"`
}
