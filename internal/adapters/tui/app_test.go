package tui

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemcp/internal/adapters/tui/views"
	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
	"resumemcp/internal/domain/domaintest"
)

// send delivers msg and then follows the view switches it triggers.
func send(a *App, msg tea.Msg) {
	_, cmd := a.Update(msg)
	for cmd != nil {
		next := cmd()
		switch next.(type) {
		case views.SwitchToToolsMsg, views.SwitchToKeysMsg, views.SwitchToPayloadMsg,
			views.SwitchToHelpMsg, views.CloseHelpMsg:
			_, cmd = a.Update(next)
		default:
			return
		}
	}
}

type failingOpener struct {
	opened []string
}

func (f *failingOpener) Command(path string) (*exec.Cmd, error) {
	f.opened = append(f.opened, path)
	return nil, errors.New("not generated yet")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	r := domaintest.SampleResume()
	answers, err := precompute.NewEngine(r, domain.BuildIndex(r)).Run(context.Background())
	require.NoError(t, err)

	a := NewApp(answers, "dist", nil)
	a.Update(a.Init()())
	send(a, tea.WindowSizeMsg{Width: 120, Height: 60})
	return a
}

func TestApp_Navigation(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, ViewTools, a.State())

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewKeys, a.State())
	assert.Contains(t, a.View(), "proj1")

	send(a, tea.KeyMsg{Type: tea.KeyDown})
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewPayload, a.State())
	assert.Equal(t, "tools/get_skills_for_project/proj2.json", a.Payload().Path())
	assert.Contains(t, a.Payload().Content(), "kafka")

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewKeys, a.State())

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewTools, a.State())
}

func TestApp_HelpReturnsToPreviousView(t *testing.T) {
	a := newTestApp(t)

	for i := 0; i < 5; i++ {
		send(a, tea.KeyMsg{Type: tea.KeyDown})
	}
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewPayload, a.State())
	assert.Equal(t, "tools/get_basic_info.json", a.Payload().Path())

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Equal(t, ViewHelp, a.State())
	assert.Contains(t, a.View(), "Resume MCP Help")

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewPayload, a.State())
}

func TestApp_OpenArtifactReportsErrors(t *testing.T) {
	a := newTestApp(t)
	opener := &failingOpener{}
	a.opener = opener

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewPayload, a.State())

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)
	_, cmd = a.Update(cmd())
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Equal(t, []string{filepath.Join("dist", "tools", "get_skills_for_project", "proj1.json")}, opener.opened)
	assert.True(t, a.Payload().MessageErr)
	assert.Contains(t, a.Payload().Message, "not generated yet")
}
