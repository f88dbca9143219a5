package precompute

import (
	"sort"

	"resumemcp/internal/application"
	"resumemcp/internal/domain"
)

// PairKey addresses a shared-skills answer. (A, B) and (B, A) hold the same answer.
type PairKey struct {
	A string
	B string
}

// Result holds every precomputed answer.
type Result struct {
	SkillsForProject      map[string][]domain.Skill
	ProjectsUsingSkill    map[string][]domain.Project
	ExperiencesUsingSkill map[string][]domain.Experience
	SharedSkills          map[PairKey][]domain.Skill
	SkillClusters         map[string][]string
	ExperienceDetails     map[string]domain.Experience
	ProjectDetails        map[string]domain.Project
	BasicInfo             domain.PersonalInfo
	Indexes               IndexSnapshot
}

// Answer returns the precomputed payload for a tool and its keys.
func (r *Result) Answer(tool string, keys ...string) (any, error) {
	t, err := LookupTool(tool)
	if err != nil {
		return nil, err
	}
	if err := t.CheckKeys(keys); err != nil {
		return nil, err
	}

	var (
		payload any
		ok      bool
	)
	switch tool {
	case ToolSkillsForProject:
		payload, ok = r.SkillsForProject[keys[0]]
	case ToolProjectsUsingSkill:
		payload, ok = r.ProjectsUsingSkill[keys[0]]
	case ToolExperiencesUsingSkill:
		payload, ok = r.ExperiencesUsingSkill[keys[0]]
	case ToolSharedSkills:
		payload, ok = r.SharedSkills[PairKey{A: keys[0], B: keys[1]}]
	case ToolExperienceDetails:
		payload, ok = r.ExperienceDetails[keys[0]]
	case ToolProjectDetails:
		payload, ok = r.ProjectDetails[keys[0]]
	case ToolSkillClusters:
		payload, ok = r.SkillClusters, true
	case ToolBasicInfo:
		payload, ok = r.BasicInfo, true
	case ToolResumeIndexes:
		payload, ok = r.Indexes, true
	}
	if !ok {
		return nil, application.ErrNotFound
	}
	return payload, nil
}

// Keys lists every key of a tool in ascending order. No-key tools return a
// single empty key.
func (r *Result) Keys(tool string) ([][]string, error) {
	t, err := LookupTool(tool)
	if err != nil {
		return nil, err
	}
	if !t.Keyed() {
		return [][]string{{}}, nil
	}

	var keys [][]string
	switch tool {
	case ToolSkillsForProject:
		keys = singleKeys(r.SkillsForProject)
	case ToolProjectsUsingSkill:
		keys = singleKeys(r.ProjectsUsingSkill)
	case ToolExperiencesUsingSkill:
		keys = singleKeys(r.ExperiencesUsingSkill)
	case ToolExperienceDetails:
		keys = singleKeys(r.ExperienceDetails)
	case ToolProjectDetails:
		keys = singleKeys(r.ProjectDetails)
	case ToolSharedSkills:
		keys = make([][]string, 0, len(r.SharedSkills))
		for k := range r.SharedSkills {
			keys = append(keys, []string{k.A, k.B})
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i][0] != keys[j][0] {
				return keys[i][0] < keys[j][0]
			}
			return keys[i][1] < keys[j][1]
		})
	}
	return keys, nil
}

func singleKeys[V any](m map[string]V) [][]string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	keys := make([][]string, len(ids))
	for i, id := range ids {
		keys[i] = []string{id}
	}
	return keys
}
