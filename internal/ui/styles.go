package ui

import "github.com/charmbracelet/lipgloss"

// Matrix color palette
var (
	ColorMatrixGreen  = lipgloss.Color("#00FF41")
	ColorGreen        = lipgloss.Color("#00CC33")
	ColorMidGreen     = lipgloss.Color("#008F11")
	ColorDimGreen     = lipgloss.Color("#004A0A")
	ColorBorderBright = lipgloss.Color("#00FF41")
	ColorBorderNorm   = lipgloss.Color("#00AA22")
	ColorError        = lipgloss.Color("#FF3300")
	ColorWarning      = lipgloss.Color("#FFAA00")
	ColorValue        = lipgloss.Color("#00FFAA")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusActive = lipgloss.NewStyle().
				Foreground(ColorMatrixGreen).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleSlotOccupied = lipgloss.NewStyle().
				Foreground(ColorMatrixGreen)

	StyleSlotFree = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleSlotMarker = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleFieldName = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleFieldValue = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleReadingTime = lipgloss.NewStyle().
				Foreground(ColorMidGreen)

	StyleReadingSensor = lipgloss.NewStyle().
				Foreground(ColorMatrixGreen).
				Bold(true)

	StyleReadingValue = lipgloss.NewStyle().
				Foreground(ColorValue)

	StyleFlagOn = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleFlagOverflow = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StyleFlagOff = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleSparkline = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
