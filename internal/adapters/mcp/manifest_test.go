package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemcp/internal/application/precompute"
)

type manifestDoc struct {
	ProtocolVersion string `json:"protocolVersion"`
	Capabilities    struct {
		Resources []struct {
			URI         string `json:"uri"`
			Name        string `json:"name"`
			Description string `json:"description"`
			MIMEType    string `json:"mimeType"`
		} `json:"resources"`
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			InputSchema struct {
				Type       string                     `json:"type"`
				Properties map[string]json.RawMessage `json:"properties"`
				Required   []string                   `json:"required"`
			} `json:"inputSchema"`
		} `json:"tools"`
	} `json:"capabilities"`
	ServerInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"serverInfo"`
}

func decodeManifest(t *testing.T) manifestDoc {
	t.Helper()
	data, err := EncodeManifest(NewManifest())
	require.NoError(t, err)

	var doc manifestDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestManifest_Header(t *testing.T) {
	doc := decodeManifest(t)

	assert.Equal(t, "2025-06-18", doc.ProtocolVersion)
	assert.Equal(t, "static-resume-mcp", doc.ServerInfo.Name)
	assert.Equal(t, "0.1.0", doc.ServerInfo.Version)
}

func TestManifest_Resources(t *testing.T) {
	doc := decodeManifest(t)

	var uris []string
	for _, r := range doc.Capabilities.Resources {
		uris = append(uris, r.URI)
		assert.Equal(t, "application/json", r.MIMEType, r.URI)
		assert.NotEmpty(t, r.Name, r.URI)
		assert.NotEmpty(t, r.Description, r.URI)
	}
	assert.Equal(t, []string{"resume://info", "resume://experiences", "resume://projects", "resume://skills"}, uris)
}

func TestManifest_Tools(t *testing.T) {
	doc := decodeManifest(t)
	require.Len(t, doc.Capabilities.Tools, len(precompute.Tools))

	for i, tool := range doc.Capabilities.Tools {
		want := precompute.Tools[i]
		t.Run(want.Name, func(t *testing.T) {
			assert.Equal(t, want.Name, tool.Name)
			assert.NotEmpty(t, tool.Description)
			assert.Equal(t, "object", tool.InputSchema.Type)
			assert.Len(t, tool.InputSchema.Properties, want.Arity())
			assert.ElementsMatch(t, want.Params, tool.InputSchema.Required)
			for _, p := range want.Params {
				assert.Contains(t, tool.InputSchema.Properties, p)
			}
		})
	}
}

func TestToolDescriptionsCoverEveryTool(t *testing.T) {
	for _, tool := range precompute.Tools {
		if toolDescriptions[tool.Name] == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		for _, p := range tool.Params {
			if paramDescriptions[p] == "" {
				t.Errorf("param %s of %s has no description", p, tool.Name)
			}
		}
	}
}
