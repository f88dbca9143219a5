package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"resumemcp/internal/application/precompute"
)

// Protocol surface advertised by the generated manifest.
const (
	ProtocolVersion = "2025-06-18"
	ServerName      = "static-resume-mcp"
	ServerVersion   = "0.1.0"
	MIMEType        = "application/json"
)

// Manifest is the content of mcp.json.
type Manifest struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    Capabilities       `json:"capabilities"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
}

// Capabilities lists everything a client can read from the tree.
type Capabilities struct {
	Resources []mcp.Resource `json:"resources"`
	Tools     []mcp.Tool     `json:"tools"`
}

// resource is one whole-collection snapshot under resources/.
type resource struct {
	file        string
	uri         string
	name        string
	description string
}

var resources = []resource{
	{file: "info", uri: "resume://info", name: "Personal Information", description: "Basic personal details and contact information"},
	{file: "experiences", uri: "resume://experiences", name: "All Experiences", description: "Complete list of work experiences"},
	{file: "projects", uri: "resume://projects", name: "All Projects", description: "Complete list of projects"},
	{file: "skills", uri: "resume://skills", name: "All Skills", description: "Complete list of skills"},
}

var toolDescriptions = map[string]string{
	precompute.ToolSkillsForProject:      "Get all skills used in a specific project",
	precompute.ToolProjectsUsingSkill:    "Get all projects that use a specific skill",
	precompute.ToolExperiencesUsingSkill: "Get all experiences that involve a specific skill",
	precompute.ToolSharedSkills:          "Get skills shared between two projects",
	precompute.ToolSkillClusters:         "Find clusters of skills that frequently appear together",
	precompute.ToolBasicInfo:             "Get basic personal details and contact information",
	precompute.ToolResumeIndexes:         "Get the skill, project and experience relation indexes",
	precompute.ToolExperienceDetails:     "Get the full details of a specific experience",
	precompute.ToolProjectDetails:        "Get the full details of a specific project",
}

var paramDescriptions = map[string]string{
	"project_id":    "Project ID",
	"skill_id":      "Skill ID",
	"experience_id": "Experience ID",
	"project_a":     "First project ID",
	"project_b":     "Second project ID",
}

// NewManifest describes every resource and every precomputed tool.
func NewManifest() Manifest {
	m := Manifest{
		ProtocolVersion: ProtocolVersion,
		ServerInfo: mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
	}
	for _, r := range resources {
		m.Capabilities.Resources = append(m.Capabilities.Resources, mcp.NewResource(r.uri, r.name,
			mcp.WithResourceDescription(r.description),
			mcp.WithMIMEType(MIMEType),
		))
	}
	for _, t := range precompute.Tools {
		m.Capabilities.Tools = append(m.Capabilities.Tools, toolDefinition(t))
	}
	return m
}

func toolDefinition(t precompute.Tool) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(toolDescriptions[t.Name]),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
	for _, p := range t.Params {
		opts = append(opts, mcp.WithString(p,
			mcp.Required(),
			mcp.Description(paramDescriptions[p]),
		))
	}
	return mcp.NewTool(t.Name, opts...)
}
