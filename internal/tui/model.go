package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"img2pdf/internal/processor"
)

type Model struct {
	updates     <-chan processor.ProgressUpdate
	onInterrupt func()
	started     time.Time
	width       int
	total       int
	added       int
	skipped     int
	current     string
	quitting    bool
}

type doneMsg struct{}

type updateMsg processor.ProgressUpdate

// NewModel renders progress read from updates until the channel is closed.
// onInterrupt, when set, is called on ctrl+c; the model keeps draining
// updates until the run stops.
func NewModel(updates <-chan processor.ProgressUpdate, onInterrupt func()) Model {
	return Model{updates: updates, onInterrupt: onInterrupt, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.total += msg.TotalDelta
		m.added += msg.AddedDelta
		m.skipped += msg.SkippedDelta
		if msg.Current != nil {
			m.current = filepath.Base(msg.Current.Path)
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.onInterrupt != nil {
			m.onInterrupt()
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	done := m.added + m.skipped
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(done) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	bar := renderBar(barWidth, ratio)
	elapsed := time.Since(m.started).Round(time.Millisecond)

	lines := []string{
		titleStyle.Render("img2pdf"),
		labelStyle.Render(fmt.Sprintf("Files: %d/%d", done, m.total)) + dimStyle.Render(fmt.Sprintf("  pages:%d  skipped:%d", m.added, m.skipped)),
		labelStyle.Render("Current: ") + dimStyle.Render(m.current),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		barStyle.Render(bar),
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan processor.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
)
