package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with session counters.
func RenderStatusBar(width int, producing, draining bool,
	written, rejected, read, underflows uint64, count, capacity int, lastErr string) string {

	status := ""
	if producing {
		status = StyleStatusActive.Render("[PRODUCING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}
	if draining {
		status += StyleStatusActive.Render("[DRAINING]")
	} else {
		status += StyleStatusPaused.Render("[HELD]")
	}

	info := fmt.Sprintf(" Stored: %d/%d  Written: %d  Rejected: %d  Read: %d  Underflows: %d",
		count, capacity, written, rejected, read, underflows)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)
	if lastErr != "" {
		content += "  " + StyleError.Render("ERR: "+lastErr)
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
