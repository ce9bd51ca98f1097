package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sensorlog.klederson.com/internal/buffer"
	"sensorlog.klederson.com/internal/config"
)

// sparkRamp maps a fill ratio to an ASCII intensity character.
var sparkRamp = []byte("_.:-=+*#%@")

// RenderBufferPanel renders the buffer diagnostics panel: slot map with
// head/tail markers, occupancy gauge, status flags, index fields and a
// fill-history sparkline. Strictly read-only over the snapshot.
func RenderBufferPanel(width, height int, st buffer.State, history []float64) string {
	innerW := width - 4
	if innerW < 16 {
		innerW = 16
	}

	title := StylePanelTitle.Render(fmt.Sprintf("RING BUFFER [%d/%d]", st.Count, st.Capacity))
	separator := StyleSlotFree.Render(strings.Repeat("-", innerW))

	mapW := innerW
	if mapW > config.SlotMapMaxWidth {
		mapW = config.SlotMapMaxWidth
	}

	lines := []string{title, separator}
	lines = append(lines, renderSlotMap(st, mapW)...)
	lines = append(lines, "")
	lines = append(lines, renderGauge(st, innerW))
	lines = append(lines, renderFlags(st))
	lines = append(lines,
		fieldLine("head", fmt.Sprintf("%d", st.Head)),
		fieldLine("tail", fmt.Sprintf("%d", st.Tail)),
		fieldLine("free", fmt.Sprintf("%d", st.Capacity-st.Count)),
	)
	lines = append(lines, "")
	lines = append(lines, StylePanelTitle.Render("OCCUPANCY"))
	lines = append(lines, renderSparkline(history, innerW))
	lines = append(lines, "")
	lines = append(lines, StyleHelp.Render(" [p]ause producer  [d]rain toggle  [r]ead one"))
	lines = append(lines, StyleHelp.Render(" [e] peek oldest   [c]lear buffer  [q]uit"))

	return clampPanel(lines, width, height)
}

// renderSlotMap draws one character per slot (scaled down for large
// capacities) plus a marker line locating head and tail.
func renderSlotMap(st buffer.State, maxW int) []string {
	if st.Capacity == 0 {
		return []string{StyleHelp.Render(" buffer closed")}
	}

	if st.Capacity <= maxW {
		slots := make([]string, st.Capacity)
		markers := make([]byte, st.Capacity)
		for i := range markers {
			markers[i] = ' '
		}
		for i := 0; i < st.Capacity; i++ {
			if slotOccupied(st, i) {
				slots[i] = StyleSlotOccupied.Render("#")
			} else {
				slots[i] = StyleSlotFree.Render(".")
			}
		}
		switch {
		case st.Head == st.Tail:
			markers[st.Head] = 'B' // head and tail coincide (empty or full)
		default:
			markers[st.Head] = 'H'
			markers[st.Tail] = 'T'
		}
		return []string{
			strings.Join(slots, ""),
			StyleSlotMarker.Render(string(markers)),
		}
	}

	// Scaled map: each cell summarises several slots.
	perCell := (st.Capacity + maxW - 1) / maxW
	cells := (st.Capacity + perCell - 1) / perCell
	out := make([]string, cells)
	for c := 0; c < cells; c++ {
		occupied := 0
		total := 0
		for i := c * perCell; i < (c+1)*perCell && i < st.Capacity; i++ {
			total++
			if slotOccupied(st, i) {
				occupied++
			}
		}
		ratio := float64(occupied) / float64(total)
		switch {
		case ratio == 0:
			out[c] = StyleSlotFree.Render(".")
		case ratio < 0.5:
			out[c] = StyleSlotOccupied.Render(":")
		case ratio < 1:
			out[c] = StyleSlotOccupied.Render("*")
		default:
			out[c] = StyleSlotOccupied.Render("#")
		}
	}
	legend := StyleHelp.Render(fmt.Sprintf(" 1 cell = %d slots", perCell))
	return []string{strings.Join(out, ""), legend}
}

// slotOccupied reports whether slot i holds an unread entry. The live
// region starts at tail and spans count slots, wrapping at capacity.
func slotOccupied(st buffer.State, i int) bool {
	dist := (i - st.Tail + st.Capacity) % st.Capacity
	if st.Count == st.Capacity {
		return true
	}
	return dist < st.Count
}

func renderGauge(st buffer.State, maxW int) string {
	gaugeW := maxW - 10
	if gaugeW < 10 {
		gaugeW = 10
	}
	filled := 0
	if st.Capacity > 0 {
		filled = st.Count * gaugeW / st.Capacity
	}
	bar := StyleSlotOccupied.Render(strings.Repeat("#", filled)) +
		StyleSlotFree.Render(strings.Repeat("-", gaugeW-filled))
	pct := 0
	if st.Capacity > 0 {
		pct = st.Count * 100 / st.Capacity
	}
	return fmt.Sprintf("[%s] %3d%%", bar, pct)
}

func renderFlags(st buffer.State) string {
	flag := func(on bool, label string, onSty lipgloss.Style) string {
		if on {
			return onSty.Render(label)
		}
		return StyleFlagOff.Render(label)
	}
	return " " +
		flag(st.Status.Full, "FULL", StyleFlagOn) + " " +
		flag(st.Status.Empty, "EMPTY", StyleFlagOn) + " " +
		flag(st.Status.Overflowed, "OVERFLOW", StyleFlagOverflow)
}

func renderSparkline(history []float64, maxW int) string {
	if len(history) == 0 {
		return StyleHelp.Render(" no samples yet")
	}
	if len(history) > maxW {
		history = history[len(history)-maxW:]
	}
	out := make([]byte, len(history))
	for i, v := range history {
		idx := int(v * float64(len(sparkRamp)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRamp) {
			idx = len(sparkRamp) - 1
		}
		out[i] = sparkRamp[idx]
	}
	return StyleSparkline.Render(string(out))
}

func fieldLine(name, value string) string {
	return fmt.Sprintf(" %s %s", StyleFieldName.Render(name+":"), StyleFieldValue.Render(value))
}

// clampPanel wraps lines in the panel border and hard-clamps the
// result to exactly height lines. lipgloss Height() only sets a
// minimum; it won't truncate overflow.
func clampPanel(lines []string, width, height int) string {
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}
