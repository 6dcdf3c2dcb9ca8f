package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chatlens/chatlens/internal/profile"
	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/sentiment"
	"github.com/chatlens/chatlens/internal/stats"
)

// panelRenderedMsg is sent when an async stats render completes.
type panelRenderedMsg struct {
	selection string
	content   string
}

// loadPanelCmd computes and renders the stats view for one selection off the
// update loop; large exports make the URL scan noticeable.
func (m model) loadPanelCmd(selection string) tea.Cmd {
	width := m.panelWidth()
	return func() tea.Msg {
		return panelRenderedMsg{
			selection: selection,
			content:   render.Wrap(m.buildPanel(selection), width),
		}
	}
}

// buildPanel assembles the dashboard sections for the selection: the group
// view for Overall, the behavior view for a single author.
func (m model) buildPanel(selection string) string {
	author := selection
	if selection == overallEntry {
		author = stats.Overall
	}

	sections := []string{
		render.Summary(stats.Summarize(m.records, author, m.urls), selection),
	}

	if selection == overallEntry {
		top, shares := stats.TopUsers(m.records, m.topN)
		sections = append(sections, render.TopUsers(top, shares))

		profiles := profile.Build(m.records, m.emoji, m.urls)
		sections = append(sections, render.Scores(profile.Scores(profiles)))

		sections = append(sections, render.SentimentCounts(
			sentiment.Distribution(m.records, stats.Overall, m.scorer)))
	} else {
		for _, p := range profile.Build(m.records, m.emoji, m.urls) {
			if p.Author == selection {
				sections = append(sections, render.ProfileDetail(p))
				break
			}
		}
	}

	sections = append(sections,
		render.Activity("Weekly activity", stats.WeeklyActivity(m.records, author)),
		render.MonthlyTimeline(stats.MonthlyTimeline(m.records, author)),
	)

	if emojis := stats.EmojiFrequency(m.records, author, m.emoji); len(emojis) > 0 {
		sections = append(sections, render.Activity("Emoji frequency", emojis))
	}

	return strings.Join(sections, "\n")
}
