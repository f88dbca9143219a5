package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"resumemcp/internal/application/precompute"
)

func loadedTools(t *testing.T) *ToolsModel {
	t.Helper()
	m := NewToolsModel(sampleAnswers(t))
	m.Update(exec(m.Init()))
	return m
}

func TestToolsModel_LoadsEveryTool(t *testing.T) {
	m := loadedTools(t)

	view := m.View()
	for _, tool := range precompute.Tools {
		if !strings.Contains(view, tool.Name) {
			t.Errorf("expected %s in view", tool.Name)
		}
	}

	s, ok := m.Selected()
	if !ok || s.Tool.Name != precompute.ToolSkillsForProject || s.Answers != 3 {
		t.Errorf("unexpected initial selection %+v", s)
	}
}

func TestToolsModel_Enter(t *testing.T) {
	tests := []struct {
		name        string
		downs       int
		wantKeys    string
		wantPayload string
	}{
		{name: "keyed tool opens keys", downs: 3, wantKeys: precompute.ToolSharedSkills},
		{name: "no-key tool opens payload", downs: 4, wantPayload: precompute.ToolSkillClusters},
		{name: "cursor stops at the last tool", downs: 20, wantKeys: precompute.ToolProjectDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedTools(t)
			for i := 0; i < tt.downs; i++ {
				m.Update(keyOf(tea.KeyDown))
			}

			_, cmd := m.Update(keyOf(tea.KeyEnter))
			switch msg := exec(cmd).(type) {
			case SwitchToKeysMsg:
				if msg.Tool.Name != tt.wantKeys {
					t.Errorf("expected keys of %q, got %q", tt.wantKeys, msg.Tool.Name)
				}
			case SwitchToPayloadMsg:
				if msg.Tool.Name != tt.wantPayload || len(msg.Keys) != 0 {
					t.Errorf("expected payload of %q, got %+v", tt.wantPayload, msg)
				}
			default:
				t.Fatalf("unexpected message %T", msg)
			}
		})
	}
}

func TestToolsModel_HelpAndQuit(t *testing.T) {
	m := loadedTools(t)

	_, cmd := m.Update(runes("?"))
	if _, ok := exec(cmd).(SwitchToHelpMsg); !ok {
		t.Error("expected ? to open help")
	}

	_, cmd = m.Update(runes("q"))
	if _, ok := exec(cmd).(tea.QuitMsg); !ok {
		t.Error("expected q to quit")
	}
}
