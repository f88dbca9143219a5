package precompute

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemcp/internal/application"
	"resumemcp/internal/domain"
	"resumemcp/internal/domain/domaintest"
)

func newEngine(r *domain.Resume, opts ...Option) *Engine {
	return NewEngine(r, domain.BuildIndex(r), opts...)
}

func skillIDs(skills []domain.Skill) []string {
	ids := make([]string, len(skills))
	for i, s := range skills {
		ids[i] = s.ID
	}
	return ids
}

func TestSkillsForProject_KeepsDeclarationOrder(t *testing.T) {
	e := newEngine(domaintest.SampleResume())

	assert.Equal(t, []string{"rust", "postgresql", "docker"}, skillIDs(e.SkillsForProject("proj1")))
	assert.Empty(t, e.SkillsForProject("missing"))
	assert.NotNil(t, e.SkillsForProject("missing"))
}

func TestSkillsForProject_DropsUnresolvedSkills(t *testing.T) {
	r := domaintest.SampleResume()
	r.Projects[0].Skills = []string{"git", "rust", "terraform"}
	e := newEngine(r)

	assert.Equal(t, []string{"rust"}, skillIDs(e.SkillsForProject("proj1")))
}

func TestProjectsUsingSkill(t *testing.T) {
	e := newEngine(domaintest.SampleResume())

	projects := e.ProjectsUsingSkill("rust")
	require.Len(t, projects, 2)
	assert.Equal(t, "proj1", projects[0].ID)
	assert.Equal(t, "proj2", projects[1].ID)

	assert.Empty(t, e.ProjectsUsingSkill("cobol"))
}

func TestExperiencesUsingSkill(t *testing.T) {
	e := newEngine(domaintest.SampleResume())

	experiences := e.ExperiencesUsingSkill("docker")
	require.Len(t, experiences, 2)
	assert.Equal(t, "exp1", experiences[0].ID)
	assert.Equal(t, "exp2", experiences[1].ID)
}

// Skill s reaches e1 through both p1 and p2; it must appear once.
func TestExperiencesUsingSkill_TwoPathsToSameExperience(t *testing.T) {
	r := &domain.Resume{
		Experiences: []domain.Experience{
			domaintest.Experience("e1", "p1", "p2"),
			domaintest.Experience("e2", "p2"),
		},
		Projects: []domain.Project{domaintest.Project("p1", "s"), domaintest.Project("p2", "s")},
		Skills:   domaintest.Skills("s"),
	}
	e := newEngine(r)

	experiences := e.ExperiencesUsingSkill("s")
	require.Len(t, experiences, 2)
	assert.Equal(t, "e1", experiences[0].ID)
	assert.Equal(t, "e2", experiences[1].ID)
}

func TestSharedSkills(t *testing.T) {
	e := newEngine(domaintest.SampleResume())

	tests := []struct {
		name string
		a, b string
		want []string
	}{
		{name: "two shared", a: "proj1", b: "proj3", want: []string{"docker", "postgresql"}},
		{name: "one shared", a: "proj1", b: "proj2", want: []string{"rust"}},
		{name: "none shared", a: "proj2", b: "proj3", want: []string{}},
		{name: "unknown project", a: "proj1", b: "ghost", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skillIDs(e.SharedSkills(tt.a, tt.b)))
			assert.Equal(t, tt.want, skillIDs(e.SharedSkills(tt.b, tt.a)))
		})
	}
}

func TestSharedSkills_IgnoresRepeatedIDs(t *testing.T) {
	r := &domain.Resume{
		Projects: []domain.Project{
			domaintest.Project("a", "x", "x", "y"),
			domaintest.Project("b", "y", "x", "x"),
		},
		Skills: domaintest.Skills("x", "y"),
	}
	e := newEngine(r)

	assert.Equal(t, []string{"x", "y"}, skillIDs(e.SharedSkills("a", "b")))
}

func TestSkillClusters(t *testing.T) {
	tests := []struct {
		name     string
		projects []domain.Project
		want     map[string][]string
	}{
		{
			name:     "single project has no clusters",
			projects: []domain.Project{domaintest.Project("p1", "x", "y", "z")},
			want:     map[string][]string{},
		},
		{
			name: "shared pair only",
			projects: []domain.Project{
				domaintest.Project("p1", "x", "y", "z"),
				domaintest.Project("p2", "x", "y", "w"),
			},
			want: map[string][]string{"x,y": {"p1", "p2"}},
		},
		{
			name: "repeated full set",
			projects: []domain.Project{
				domaintest.Project("p1", "z", "x", "y"),
				domaintest.Project("p2", "y", "z", "x"),
			},
			want: map[string][]string{
				"x,y":   {"p1", "p2"},
				"x,z":   {"p1", "p2"},
				"y,z":   {"p1", "p2"},
				"x,y,z": {"p1", "p2"},
			},
		},
		{
			name: "two-skill project adds no full set",
			projects: []domain.Project{
				domaintest.Project("p1", "b", "a"),
				domaintest.Project("p2", "a", "b"),
			},
			want: map[string][]string{"a,b": {"p1", "p2"}},
		},
		{
			name: "single-skill projects are ignored",
			projects: []domain.Project{
				domaintest.Project("p1", "a"),
				domaintest.Project("p2", "a"),
			},
			want: map[string][]string{},
		},
		{
			name: "no triples out of larger sets",
			projects: []domain.Project{
				domaintest.Project("p1", "a", "b", "c", "d"),
				domaintest.Project("p2", "a", "b", "c", "e"),
			},
			want: map[string][]string{
				"a,b": {"p1", "p2"},
				"a,c": {"p1", "p2"},
				"b,c": {"p1", "p2"},
			},
		},
		{
			name: "repeated skill ids contribute once",
			projects: []domain.Project{
				domaintest.Project("p1", "a", "a", "b"),
				domaintest.Project("p2", "b", "a"),
			},
			want: map[string][]string{"a,b": {"p1", "p2"}},
		},
		{
			name: "project order is document order",
			projects: []domain.Project{
				domaintest.Project("zz", "a", "b"),
				domaintest.Project("aa", "a", "b"),
				domaintest.Project("mm", "a", "b"),
			},
			want: map[string][]string{"a,b": {"zz", "aa", "mm"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(&domain.Resume{Projects: tt.projects})
			assert.Equal(t, tt.want, e.SkillClusters())
		})
	}
}

func TestSkillClusters_SampleResume(t *testing.T) {
	clusters := newEngine(domaintest.SampleResume()).SkillClusters()

	assert.Equal(t, []string{"proj1", "proj3"}, clusters["docker,postgresql"])
	for key, projects := range clusters {
		assert.Greater(t, len(projects), 1, "cluster %s", key)
	}
	assert.NotContains(t, clusters, "docker,postgresql,rust")
}

func TestClusterKey(t *testing.T) {
	assert.Equal(t, "a,b,c", ClusterKey("c", "a", "b"))
	assert.Equal(t, "solo", ClusterKey("solo"))
}

func TestRun_FillsEveryShape(t *testing.T) {
	r := domaintest.SampleResume()
	res, err := newEngine(r).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.SkillsForProject, 3)
	assert.Len(t, res.ProjectDetails, 3)
	assert.Len(t, res.ProjectsUsingSkill, 6)
	assert.Len(t, res.ExperiencesUsingSkill, 6)
	assert.Len(t, res.ExperienceDetails, 2)
	assert.Len(t, res.SharedSkills, 6)
	assert.Equal(t, "Test User", res.BasicInfo.Name)
	assert.Contains(t, res.Indexes.SkillToProjects, "rust")
	assert.Contains(t, res.SkillClusters, "docker,postgresql")

	assert.Equal(t, "Tech Corp", res.ExperienceDetails["exp1"].Employer)
	assert.Equal(t, "8 months", *res.ProjectDetails["proj1"].Duration)
}

func TestRun_SharedSkillsSymmetric(t *testing.T) {
	res, err := newEngine(domaintest.SampleResume()).Run(context.Background())
	require.NoError(t, err)

	for key, skills := range res.SharedSkills {
		assert.NotEqual(t, key.A, key.B)
		mirror, ok := res.SharedSkills[PairKey{A: key.B, B: key.A}]
		require.True(t, ok, "missing mirror of %v", key)
		assert.Equal(t, skills, mirror)
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	r := domaintest.SampleResume()

	parallel, err := newEngine(r, WithParallel(true)).Run(context.Background())
	require.NoError(t, err)
	sequential, err := newEngine(r, WithParallel(false)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestRun_Idempotent(t *testing.T) {
	r := domaintest.SampleResume()

	first, err := newEngine(r).Run(context.Background())
	require.NoError(t, err)
	second, err := newEngine(r).Run(context.Background())
	require.NoError(t, err)

	a, err := json.Marshal(first.SkillClusters)
	require.NoError(t, err)
	b, err := json.Marshal(second.SkillClusters)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_DanglingProjectIsDropped(t *testing.T) {
	r := domaintest.SampleResume()
	r.Experiences[0].Projects = append(r.Experiences[0].Projects, "ghost")

	res, err := newEngine(r).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"exp1"}, res.Indexes.ProjectToExperiences["ghost"])
	assert.NotContains(t, res.ProjectDetails, "ghost")
	assert.NotContains(t, res.SkillsForProject, "ghost")
}

func TestRun_EmptyResume(t *testing.T) {
	res, err := newEngine(domaintest.EmptyResume()).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, res.SkillsForProject)
	assert.Empty(t, res.SharedSkills)
	assert.Empty(t, res.SkillClusters)
	assert.NotNil(t, res.SkillClusters)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{true, false} {
		_, err := newEngine(domaintest.SampleResume(), WithParallel(parallel)).Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestResult_Answer(t *testing.T) {
	res, err := newEngine(domaintest.SampleResume()).Run(context.Background())
	require.NoError(t, err)

	payload, err := res.Answer(ToolSharedSkills, "proj3", "proj1")
	require.NoError(t, err)
	assert.Equal(t, []string{"docker", "postgresql"}, skillIDs(payload.([]domain.Skill)))

	payload, err = res.Answer(ToolBasicInfo)
	require.NoError(t, err)
	assert.Equal(t, "Test User", payload.(domain.PersonalInfo).Name)

	_, err = res.Answer(ToolProjectDetails, "ghost")
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = res.Answer("get_weather", "x")
	assert.ErrorIs(t, err, application.ErrUnknownTool)

	_, err = res.Answer(ToolSharedSkills, "proj1")
	var arityErr *application.ArityError
	assert.True(t, errors.As(err, &arityErr))
}

func TestResult_Keys(t *testing.T) {
	res, err := newEngine(domaintest.SampleResume()).Run(context.Background())
	require.NoError(t, err)

	keys, err := res.Keys(ToolExperienceDetails)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"exp1"}, {"exp2"}}, keys)

	keys, err = res.Keys(ToolSharedSkills)
	require.NoError(t, err)
	require.Len(t, keys, 6)
	assert.Equal(t, []string{"proj1", "proj2"}, keys[0])
	assert.Equal(t, []string{"proj3", "proj2"}, keys[5])

	keys, err = res.Keys(ToolSkillClusters)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{}}, keys)
}

func TestLookupTool(t *testing.T) {
	tool, err := LookupTool(ToolSharedSkills)
	require.NoError(t, err)
	assert.Equal(t, 2, tool.Arity())
	assert.True(t, tool.Keyed())

	tool, err = LookupTool(ToolResumeIndexes)
	require.NoError(t, err)
	assert.False(t, tool.Keyed())

	assert.Len(t, Tools, 9)
}
