package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"img2pdf/internal/processor"
)

func TestModelCountsUpdates(t *testing.T) {
	updates := make(chan processor.ProgressUpdate)
	var m tea.Model = NewModel(updates, nil)

	m, _ = m.Update(updateMsg{TotalDelta: 3})
	m, _ = m.Update(updateMsg{AddedDelta: 1, Current: &processor.Result{Path: "/in/a.png"}})
	m, _ = m.Update(updateMsg{SkippedDelta: 1, Current: &processor.Result{Path: "/in/b.tif"}})

	model := m.(Model)
	if model.total != 3 || model.added != 1 || model.skipped != 1 {
		t.Fatalf("unexpected counters: %+v", model)
	}
	if model.current != "b.tif" {
		t.Fatalf("expected current b.tif, got %q", model.current)
	}
	if view := model.View(); !strings.Contains(view, "Files: 2/3") {
		t.Fatalf("view missing progress line:\n%s", view)
	}

	m, cmd := m.Update(doneMsg{})
	if cmd == nil || m.View() != "" {
		t.Fatalf("expected quit with empty view")
	}
}

func TestModelInterrupt(t *testing.T) {
	interrupted := false
	m := NewModel(nil, func() { interrupted = true })

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !interrupted {
		t.Fatalf("expected interrupt callback")
	}
}

func TestRenderBarBounds(t *testing.T) {
	if got := renderBar(4, 2); got != "[====]" {
		t.Fatalf("got %q", got)
	}
	if got := renderBar(4, -1); got != "[    ]" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderSummaryAlignsRows(t *testing.T) {
	out := RenderSummary([]SummaryRow{
		{Label: "Pages added", Value: "3"},
		{Label: "Skipped", Value: "12"},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != strings.Repeat("-", len("Pages added")+2+3) {
		t.Fatalf("unexpected rule %q", lines[0])
	}
}
