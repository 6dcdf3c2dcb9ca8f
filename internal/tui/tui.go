// Package tui is the interactive dashboard: a filterable author list on the
// left and the rendered stats for the selection on the right.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/parse"
	"github.com/chatlens/chatlens/internal/profile"
	"github.com/chatlens/chatlens/internal/sentiment"
	"github.com/chatlens/chatlens/internal/stats"
)

// overallEntry is the pseudo-author at the top of the list selecting the
// whole chat.
const overallEntry = "Overall"

type model struct {
	records []parse.Record
	authors []string       // all non-notification authors, first-seen order
	counts  map[string]int // messages per author
	urls    detect.URLDetector
	emoji   detect.EmojiDetector
	scorer  sentiment.Scorer
	topN    int

	filtered    []string // overallEntry + authors matching the filter
	cursor      int
	listOffset  int
	filterInput textinput.Model
	panel       viewport.Model
	panelKey    string // selection the panel currently shows
	flash       string // transient status note (clipboard feedback)
	width       int
	height      int
	ready       bool
	quitting    bool
}

// Run starts the dashboard and blocks until the user quits.
func Run(records []parse.Record, urls detect.URLDetector, emoji detect.EmojiDetector, scorer sentiment.Scorer, topN int) error {
	ti := textinput.New()
	ti.Placeholder = "Filter authors..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	counts := make(map[string]int)
	for _, r := range records {
		if !r.IsNotification() {
			counts[r.Author]++
		}
	}

	m := model{
		records:     records,
		authors:     stats.Authors(records),
		counts:      counts,
		urls:        urls,
		emoji:       emoji,
		scorer:      scorer,
		topN:        topN,
		filterInput: ti,
		panel:       viewport.New(0, 0),
	}
	m.filtered = m.applyFilter("")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// applyFilter returns the list entries for a filter string: Overall first,
// then authors whose name contains the filter, case-insensitively.
func (m model) applyFilter(filter string) []string {
	entries := []string{overallEntry}
	needle := strings.ToLower(filter)
	for _, a := range m.authors {
		if needle == "" || strings.Contains(strings.ToLower(a), needle) {
			entries = append(entries, a)
		}
	}
	return entries
}

func (m model) selection() string {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return overallEntry
	}
	return m.filtered[m.cursor]
}

// Init loads the Overall panel.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadPanelCmd(overallEntry))
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.panel = viewport.New(m.panelWidth(), m.panelHeight())
		cmds = append(cmds, m.loadPanelCmd(m.selection()))
		m.panelKey = ""
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		m.flash = ""
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			m.flash = m.copySelection()
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPanel())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPanel())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Overall):
			if m.cursor != 0 && len(m.filtered) > 0 {
				m.cursor = 0
				m.listOffset = 0
				cmds = append(cmds, m.loadCurrentPanel())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PanelUp):
			m.panel.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PanelDn):
			m.panel.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.panel.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.panel.LineDown(m.panelHeight())
			return m, nil
		}

		// Remaining keys edit the filter.
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		filtered := m.applyFilter(m.filterInput.Value())
		if !equal(filtered, m.filtered) {
			m.filtered = filtered
			m.cursor = 0
			m.listOffset = 0
			cmds = append(cmds, m.loadCurrentPanel())
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.filtered) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			visibleItems := m.panelHeight() / linesPerItem
			maxOffset := len(m.filtered) - visibleItems
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.filtered) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPanel())
			}
			return m, tea.Batch(cmds...)

		case region == regionPanel && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.panel, vpCmd = m.panel.Update(msg)
			if vpCmd != nil {
				cmds = append(cmds, vpCmd)
			}
			return m, tea.Batch(cmds...)
		}

		return m, nil

	case panelRenderedMsg:
		if msg.selection != m.selection() {
			return m, nil // stale render
		}
		if msg.selection == m.panelKey {
			return m, nil
		}
		m.panel.SetContent(msg.content)
		m.panel.GotoTop()
		m.panelKey = msg.selection
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View renders the full dashboard.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	panelW := m.panelWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.panel.Width = panelW
	m.panel.Height = panelH
	statsPanel := styleActiveBorder.
		Width(panelW).
		Height(panelH).
		Render(m.panel.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, statsPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	// 30% for the author list, minus border padding
	w := m.width*30/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPanel
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY/linesPerItem
	}

	if x > listBoxRight+1 {
		return regionPanel, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d authors", len(m.authors)),
		"click/up/dn navigate",
		"Home overall",
		"scroll/C-u/C-d panel",
		"Enter copy row",
		"Esc quit",
	}
	if m.flash != "" {
		parts = append([]string{m.flash}, parts...)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) loadCurrentPanel() tea.Cmd {
	sel := m.selection()
	if sel == m.panelKey {
		return nil
	}
	return m.loadPanelCmd(sel)
}

// copySelection puts the selected row on the clipboard as TSV and returns a
// status note.
func (m model) copySelection() string {
	sel := m.selection()

	var row string
	if sel == overallEntry {
		s := stats.Summarize(m.records, stats.Overall, m.urls)
		row = fmt.Sprintf("Overall\t%d\t%d\t%d\t%d", s.Messages, s.Words, s.Media, s.Links)
	} else {
		for _, p := range profile.Build(m.records, m.emoji, m.urls) {
			if p.Author == sel {
				row = fmt.Sprintf("%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%s",
					p.Author, p.TotalMessages, p.ActiveDays, p.PerDay, p.AvgWords,
					p.EmojiPerMsg, p.EmojiMsgRatio, p.MediaRatio, p.LinkRatio,
					p.NightRatio, p.ShortRatio, p.LongRatio, p.TopHour, p.TopDay)
				break
			}
		}
	}
	if row == "" {
		return ""
	}

	if err := clipboard.WriteAll(row); err != nil {
		return "clipboard unavailable"
	}
	return "copied " + sel
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
