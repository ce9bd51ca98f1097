package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"sensorlog.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, mode string, producing, draining bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"P", "roducer"},
		{"D", "rain"},
		{"R", "ead"},
		{"E", "peek"},
		{"C", "lear"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if producing && draining {
		status = StyleStatusActive.Render("LOGGING")
	} else if producing {
		status = StyleStatusPaused.Render("DRAIN HELD")
	} else {
		status = StyleStatusPaused.Render("PAUSED")
	}

	modeInfo := StyleMenuLabel.Render(fmt.Sprintf("Source: %s", mode))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + modeInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
