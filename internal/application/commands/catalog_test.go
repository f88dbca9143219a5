package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemcp/internal/ports"
)

func sampleCatalogReader() *fakeCatalogReader {
	return &fakeCatalogReader{
		counts: []ports.TableCount{
			{Table: "skills", Rows: 6},
			{Table: "skill_clusters", Rows: 2},
		},
		categories: map[string][]string{"devops": {"docker"}},
		clusters:   map[string][]string{"docker,postgresql": {"proj1", "proj3"}},
		projects:   map[string][]string{"postgresql": {"proj1", "proj3"}},
	}
}

func TestShowCatalogCommand_Execute(t *testing.T) {
	tests := []struct {
		name         string
		skill        string
		wantProjects []string
	}{
		{name: "overview only", skill: ""},
		{name: "skill with projects", skill: "postgresql", wantProjects: []string{"proj1", "proj3"}},
		{name: "skill without projects", skill: "cobol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := NewShowCatalogCommand(sampleCatalogReader(), tt.skill).Execute(context.Background())
			require.NoError(t, err)

			assert.Len(t, summary.Tables, 2)
			assert.Equal(t, []string{"docker"}, summary.Categories["devops"])
			assert.Equal(t, []string{"proj1", "proj3"}, summary.Clusters["docker,postgresql"])
			assert.Equal(t, tt.skill, summary.Skill)
			assert.Equal(t, tt.wantProjects, summary.SkillProjects)
		})
	}
}

func TestShowCatalogCommand_ReaderFailure(t *testing.T) {
	reader := sampleCatalogReader()
	reader.err = errBoom

	_, err := NewShowCatalogCommand(reader, "").Execute(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
