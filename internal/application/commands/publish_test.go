package commands

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemcp/internal/application"
)

func TestPublishCommand_Execute(t *testing.T) {
	source := newMemTree(map[string]string{
		"mcp.json":                       "{}",
		"resources/info.json":            `{"uri":"resume://info"}`,
		"tools/find_skill_clusters.json": `{"content":[]}`,
	})
	target := newMemTree(map[string]string{
		"resources/info.json": `{"uri":"resume://info"}`,
	})

	stats, err := NewPublishCommand(source, target, "redis", zerolog.Nop()).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "redis", stats.Target)
	assert.Equal(t, 2, stats.Uploaded)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, source.files, target.files)
}

func TestPublishCommand_RequiresManifest(t *testing.T) {
	source := newMemTree(map[string]string{"tools/get_basic_info.json": "{}"})
	target := newMemTree(nil)

	_, err := NewPublishCommand(source, target, "objectstore", zerolog.Nop()).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
	assert.Empty(t, target.files)
}

func TestPublishCommand_TargetFailure(t *testing.T) {
	source := newMemTree(map[string]string{"mcp.json": "{}"})
	target := newMemTree(nil)
	target.putErr = errBoom

	_, err := NewPublishCommand(source, target, "objectstore", zerolog.Nop()).Execute(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "objectstore")
}
