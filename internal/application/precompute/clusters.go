package precompute

import (
	"slices"
	"sort"
	"strings"
)

// ClusterKeySeparator joins the sorted skill ids of a combination.
const ClusterKeySeparator = ","

// ClusterKey returns the canonical key for a skill combination.
func ClusterKey(skillIDs ...string) string {
	sorted := slices.Clone(skillIDs)
	sort.Strings(sorted)
	return strings.Join(sorted, ClusterKeySeparator)
}

// SkillClusters finds skill combinations shared by more than one project.
//
// Each project with two or more distinct skills contributes every pair of its
// skills, and a project with three or more also contributes its full skill set.
// A project contributes to a given key at most once. Keys produced by a single
// project are dropped. Project ids keep document order.
func (e *Engine) SkillClusters() map[string][]string {
	combinations := make(map[string][]string)

	for _, project := range e.resume.Projects {
		skills := distinctSorted(project.Skills)
		if len(skills) < 2 {
			continue
		}

		contributed := make(map[string]bool)
		add := func(key string) {
			if contributed[key] {
				return
			}
			contributed[key] = true
			combinations[key] = append(combinations[key], project.ID)
		}

		for i := 0; i < len(skills); i++ {
			for j := i + 1; j < len(skills); j++ {
				add(skills[i] + ClusterKeySeparator + skills[j])
			}
		}
		if len(skills) >= 3 {
			add(strings.Join(skills, ClusterKeySeparator))
		}
	}

	clusters := make(map[string][]string)
	for key, projects := range combinations {
		if len(projects) > 1 {
			clusters[key] = projects
		}
	}
	return clusters
}

func distinctSorted(ids []string) []string {
	out := slices.Clone(ids)
	sort.Strings(out)
	return slices.Compact(out)
}
