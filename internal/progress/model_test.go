package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akyairhashvil/profilecard/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestModelTracksSettledSources(t *testing.T) {
	m := New(4)
	if m.Percent() != 0 {
		t.Fatalf("expected 0%%, got %v", m.Percent())
	}

	updated, cmd := m.Update(ResultMsg{Label: "Reading", Value: "Dune"})
	if cmd != nil {
		t.Fatalf("expected no command for a result")
	}
	updated, _ = updated.Update(ResultMsg{Label: "Playing", Value: "Video games!", Fallback: true})
	m = updated.(Model)

	if m.Percent() != 0.5 {
		t.Fatalf("expected 50%%, got %v", m.Percent())
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "2/4") {
		t.Fatalf("expected count in view, got %q", view)
	}
	if !strings.Contains(view, "Reading") || !strings.Contains(view, "Playing") {
		t.Fatalf("expected settled labels in view, got %q", view)
	}
}

func TestModelDoneQuitsAndClears(t *testing.T) {
	m := New(1)
	updated, cmd := m.Update(DoneMsg{})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if v := updated.View(); v != "" {
		t.Fatalf("expected empty view after done, got %q", v)
	}
}

func TestPercentWithNoSources(t *testing.T) {
	if got := New(0).Percent(); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestInitStartsSpinner(t *testing.T) {
	if New(2).Init() == nil {
		t.Fatalf("expected spinner tick command")
	}
}

func TestDisplayStartStop(t *testing.T) {
	var out bytes.Buffer
	d := Start(&out, 2)
	d.Report(models.Result{Label: "Reading", Value: "Dune"})
	d.Report(models.Result{Label: "Playing", Value: "Outer Wilds"})
	if err := d.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	// reports after exit must not block
	d.Report(models.Result{Label: "Late"})
}
