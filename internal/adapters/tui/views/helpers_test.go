package views

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"resumemcp/internal/application/precompute"
	"resumemcp/internal/domain"
	"resumemcp/internal/domain/domaintest"
)

func sampleAnswers(t *testing.T) *precompute.Result {
	t.Helper()
	r := domaintest.SampleResume()
	res, err := precompute.NewEngine(r, domain.BuildIndex(r)).Run(context.Background())
	if err != nil {
		t.Fatalf("precompute failed: %v", err)
	}
	return res
}

func mustTool(t *testing.T, name string) precompute.Tool {
	t.Helper()
	tool, err := precompute.LookupTool(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return tool
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

// exec runs a command and returns the message it produces, or nil.
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
