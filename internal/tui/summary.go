package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderError formats msg as the single error line shown to the user.
func RenderError(msg string) string {
	return errorStyle.Render("Error: " + msg)
}

// RenderFileLine formats one processed file for non-interactive output.
func RenderFileLine(path string, props []string, skipped string) string {
	line := "    " + fileStyle.Render(path) + dimStyle.Render(" # "+strings.Join(props, ", "))
	if skipped != "" {
		line += " " + warnStyle.Render("skipped: "+skipped)
	}
	return line
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	fileStyle  = lipgloss.NewStyle().Foreground(ColorAccentAlt)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
	errorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
