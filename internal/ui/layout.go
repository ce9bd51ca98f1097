package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the buffer panel and readings panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, bufferPanel, readingsPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, bufferPanel, readingsPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
