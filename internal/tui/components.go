package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPaneTitle renders a pane header, highlighted when the pane has focus.
func renderPaneTitle(title string, focused bool, width int) string {
	title = truncateEnd(title, width-2)
	if focused {
		return FocusedTitleStyle.Render(title)
	}
	return TitleStyle.Padding(0, 1).Render(title)
}

// renderInputFrame draws a rounded bordered container around a rendered input view.
func renderInputFrame(inputView string, focused bool, contentWidth int) string {
	borderColor := MutedColor
	if focused {
		borderColor = AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 2).
		Render(inputView)
}

// renderCentered centers the provided content within the given width/height box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(max(width, 0)).
		Height(max(height, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}

func renderSeparator(width int) string {
	return SeparatorStyle.Render(strings.Repeat("─", max(width, 0)))
}
