package precompute

import "resumemcp/internal/application"

// Tool names, as published in the manifest and used in artifact paths.
const (
	ToolSkillsForProject      = "get_skills_for_project"
	ToolProjectsUsingSkill    = "get_projects_using_skill"
	ToolExperiencesUsingSkill = "get_experiences_using_skill"
	ToolSharedSkills          = "get_shared_skills"
	ToolSkillClusters         = "find_skill_clusters"
	ToolBasicInfo             = "get_basic_info"
	ToolResumeIndexes         = "get_resume_indexes"
	ToolExperienceDetails     = "get_experience_details"
	ToolProjectDetails        = "get_project_details"
)

// Tool describes a query shape: its name and the argument names that make up its key.
type Tool struct {
	Name   string
	Params []string
}

// Arity is the number of keys needed to address one answer.
func (t Tool) Arity() int {
	return len(t.Params)
}

// Keyed reports whether answers are stored one per key rather than as a single result.
func (t Tool) Keyed() bool {
	return len(t.Params) > 0
}

// Tools lists every precomputed query shape in manifest order.
var Tools = []Tool{
	{Name: ToolSkillsForProject, Params: []string{"project_id"}},
	{Name: ToolProjectsUsingSkill, Params: []string{"skill_id"}},
	{Name: ToolExperiencesUsingSkill, Params: []string{"skill_id"}},
	{Name: ToolSharedSkills, Params: []string{"project_a", "project_b"}},
	{Name: ToolSkillClusters},
	{Name: ToolBasicInfo},
	{Name: ToolResumeIndexes},
	{Name: ToolExperienceDetails, Params: []string{"experience_id"}},
	{Name: ToolProjectDetails, Params: []string{"project_id"}},
}

// LookupTool finds a tool by name.
func LookupTool(name string) (Tool, error) {
	for _, t := range Tools {
		if t.Name == name {
			return t, nil
		}
	}
	return Tool{}, application.ErrUnknownTool
}

// CheckKeys verifies that keys has the arity the tool expects.
func (t Tool) CheckKeys(keys []string) error {
	if len(keys) != t.Arity() {
		return &application.ArityError{Tool: t.Name, Want: t.Arity(), Got: len(keys)}
	}
	return nil
}
