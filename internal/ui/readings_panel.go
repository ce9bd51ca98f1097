package ui

import (
	"fmt"
	"strings"

	"sensorlog.klederson.com/internal/buffer"
)

// RenderReadingsPanel renders the consumer-side panel: the peeked
// (next-to-read) entry and the most recently drained readings, newest
// first.
func RenderReadingsPanel(width, height int, peeked *buffer.Reading, drained []buffer.Reading) string {
	innerW := width - 4
	if innerW < 12 {
		innerW = 12
	}

	title := StylePanelTitle.Render(fmt.Sprintf("READINGS [%d drained]", len(drained)))
	separator := StyleSlotFree.Render(strings.Repeat("-", innerW))

	next := StyleHelp.Render(" next: (none)")
	if peeked != nil {
		next = " " + StyleFieldName.Render("next:") + " " + renderReading(*peeked, innerW-7)
	}

	lines := []string{title, separator, next, ""}

	if len(drained) == 0 {
		lines = append(lines, StyleHelp.Render(" nothing drained yet"))
	} else {
		for i := len(drained) - 1; i >= 0; i-- {
			lines = append(lines, " "+renderReading(drained[i], innerW-1))
		}
	}

	return clampPanel(lines, width, height)
}

func renderReading(r buffer.Reading, maxW int) string {
	value := fmt.Sprintf("%.2f", r.Value)
	// Leave room for "t=<ts> s<id> " before the value.
	used := len(fmt.Sprintf("t=%d s%d ", r.Timestamp, r.SensorID))
	if used+len(value) > maxW && maxW > used {
		value = value[:maxW-used]
	}
	return StyleReadingTime.Render(fmt.Sprintf("t=%d", r.Timestamp)) + " " +
		StyleReadingSensor.Render(fmt.Sprintf("s%d", r.SensorID)) + " " +
		StyleReadingValue.Render(value)
}
