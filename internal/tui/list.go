package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each list entry occupies.
const linesPerItem = 1

// renderList renders the left panel: the Overall row plus every author that
// matches the current filter, with message counts.
func (m model) renderList(width, height int) string {
	if len(m.filtered) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No matching authors")
		return empty
	}

	var lines []string
	for i, name := range m.filtered {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, m.formatListLine(name, width, i == m.cursor))
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatListLine formats one selectable row: "[>] name  count".
func (m model) formatListLine(name string, width int, selected bool) string {
	count := fmt.Sprintf("%d", m.counts[name])
	if name == overallEntry {
		count = fmt.Sprintf("%d", len(m.records))
	}

	nameMax := width - 2 - runewidth.StringWidth(count) - 1
	if nameMax < 0 {
		nameMax = 0
	}
	display := name
	if runewidth.StringWidth(display) > nameMax {
		display = runewidth.Truncate(display, nameMax, "")
	}

	styled := display
	if name == overallEntry {
		styled = styleOverall.Render(display)
	}

	gap := nameMax - runewidth.StringWidth(display)
	if gap < 0 {
		gap = 0
	}
	line := styled + strings.Repeat(" ", gap) + " " + styleListCount.Render(count)

	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
