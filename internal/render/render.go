// Package render turns stat tables into aligned, colorized terminal output.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/chatlens/chatlens/internal/profile"
	"github.com/chatlens/chatlens/internal/sentiment"
	"github.com/chatlens/chatlens/internal/stats"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue
	colorBar    = "\033[1;32m" // bold green
	colorNeg    = "\033[1;31m" // bold red
	colorDim    = "\033[2m"
	colorAccent = "\033[1;33m" // bold yellow
)

const barWidth = 30

// Table renders rows under a dimmed header, columns padded to the widest
// cell by display width.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(colorDim + pad(h, widths[i]) + colorReset)
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// bar draws a count bar scaled against the largest count in the view.
func bar(count, max int) string {
	if max <= 0 {
		return ""
	}
	n := count * barWidth / max
	if n == 0 && count > 0 {
		n = 1
	}
	return colorBar + strings.Repeat("█", n) + colorReset
}

func title(s string) string {
	return colorTitle + s + colorReset + "\n"
}

// Summary renders the headline totals.
func Summary(s stats.Summary, scope string) string {
	var b strings.Builder
	b.WriteString(title(fmt.Sprintf("Totals (%s)", scope)))
	b.WriteString(fmt.Sprintf("  Messages  %s%d%s\n", colorAccent, s.Messages, colorReset))
	b.WriteString(fmt.Sprintf("  Words     %s%d%s\n", colorAccent, s.Words, colorReset))
	b.WriteString(fmt.Sprintf("  Media     %s%d%s\n", colorAccent, s.Media, colorReset))
	b.WriteString(fmt.Sprintf("  Links     %s%d%s\n", colorAccent, s.Links, colorReset))
	return b.String()
}

// MonthlyTimeline renders the per-month message counts with bars.
func MonthlyTimeline(rows []stats.MonthCount) string {
	max := 0
	for _, r := range rows {
		if r.Messages > max {
			max = r.Messages
		}
	}
	var b strings.Builder
	b.WriteString(title("Monthly timeline"))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %6d  %s\n", pad(r.Label, 15), r.Messages, bar(r.Messages, max)))
	}
	return b.String()
}

// DailyTimeline renders the per-day message counts with bars.
func DailyTimeline(rows []stats.DayCount) string {
	max := 0
	for _, r := range rows {
		if r.Messages > max {
			max = r.Messages
		}
	}
	var b strings.Builder
	b.WriteString(title("Daily timeline"))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %6d  %s\n", r.Date.Format("2006-01-02"), r.Messages, bar(r.Messages, max)))
	}
	return b.String()
}

// Activity renders a frequency table (weekly or monthly activity).
func Activity(heading string, rows []stats.NameCount) string {
	max := 0
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
	}
	var b strings.Builder
	b.WriteString(title(heading))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %6d  %s\n", pad(r.Name, 10), r.Count, bar(r.Count, max)))
	}
	return b.String()
}

// Heatmap renders the day-by-period pivot as a count grid.
func Heatmap(h stats.Heatmap) string {
	var b strings.Builder
	b.WriteString(title("Activity heatmap"))
	if len(h.Days) == 0 {
		return b.String()
	}

	b.WriteString(colorDim + pad("", 10))
	for _, p := range h.Periods {
		b.WriteString(fmt.Sprintf(" %5s", p))
	}
	b.WriteString(colorReset + "\n")

	for i, day := range h.Days {
		b.WriteString(pad(day, 10))
		for j := range h.Periods {
			count := h.Counts[i][j]
			if count == 0 {
				b.WriteString(colorDim + fmt.Sprintf(" %5d", count) + colorReset)
			} else {
				b.WriteString(fmt.Sprintf(" %5d", count))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TopUsers renders the ranking and the full share table.
func TopUsers(top []stats.NameCount, shares []stats.UserShare) string {
	max := 0
	for _, r := range top {
		if r.Count > max {
			max = r.Count
		}
	}
	var b strings.Builder
	b.WriteString(title("Top users"))
	for _, r := range top {
		b.WriteString(fmt.Sprintf("  %s %6d  %s\n", pad(r.Name, 16), r.Count, bar(r.Count, max)))
	}

	b.WriteString("\n")
	b.WriteString(title("Share of messages"))
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Name, fmt.Sprintf("%.2f%%", s.Percent)})
	}
	b.WriteString(Table([]string{"Name", "Percent"}, rows))
	return b.String()
}

// Profiles renders the full behavior table.
func Profiles(profiles []profile.Profile) string {
	headers := []string{
		"User", "Msgs", "Days", "Msg/Day", "Words/Msg", "Emoji/Msg", "Emoji%",
		"Media%", "Link%", "Night%", "Short%", "Long%", "Top Hour", "Top Day",
	}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Author,
			fmt.Sprintf("%d", p.TotalMessages),
			fmt.Sprintf("%d", p.ActiveDays),
			fmt.Sprintf("%.2f", p.PerDay),
			fmt.Sprintf("%.2f", p.AvgWords),
			fmt.Sprintf("%.2f", p.EmojiPerMsg),
			fmt.Sprintf("%.2f", p.EmojiMsgRatio),
			fmt.Sprintf("%.2f", p.MediaRatio),
			fmt.Sprintf("%.2f", p.LinkRatio),
			fmt.Sprintf("%.2f", p.NightRatio),
			fmt.Sprintf("%.2f", p.ShortRatio),
			fmt.Sprintf("%.2f", p.LongRatio),
			fmt.Sprintf("%d", p.TopHour),
			p.TopDay,
		})
	}
	return title("Behavior profiles") + Table(headers, rows)
}

// ProfileDetail renders one author's behavior row vertically, for narrow
// panels where the full table does not fit.
func ProfileDetail(p profile.Profile) string {
	var b strings.Builder
	b.WriteString(title("Behavior profile"))
	row := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %s %s%s%s\n", pad(name, 18), colorAccent, value, colorReset))
	}
	row("Messages", fmt.Sprintf("%d", p.TotalMessages))
	row("Active days", fmt.Sprintf("%d", p.ActiveDays))
	row("Messages/day", fmt.Sprintf("%.2f", p.PerDay))
	row("Avg words/msg", fmt.Sprintf("%.2f", p.AvgWords))
	row("Emoji/msg", fmt.Sprintf("%.2f", p.EmojiPerMsg))
	row("Emoji msg ratio", fmt.Sprintf("%.2f", p.EmojiMsgRatio))
	row("Media ratio", fmt.Sprintf("%.2f", p.MediaRatio))
	row("Link ratio", fmt.Sprintf("%.2f", p.LinkRatio))
	row("Night msg ratio", fmt.Sprintf("%.2f", p.NightRatio))
	row("Short msg ratio", fmt.Sprintf("%.2f", p.ShortRatio))
	row("Long msg ratio", fmt.Sprintf("%.2f", p.LongRatio))
	row("Most active hour", fmt.Sprintf("%d", p.TopHour))
	row("Most active day", p.TopDay)
	return b.String()
}

// Scores renders the engagement ranking with bars.
func Scores(scores []profile.Score) string {
	var b strings.Builder
	b.WriteString(title("Engagement scores"))
	for _, s := range scores {
		b.WriteString(fmt.Sprintf("  %s %7.2f  %s\n", pad(s.Author, 16), s.Value, bar(int(s.Value), 100)))
	}
	return b.String()
}

// SentimentTimeline renders mean polarity per bucket; negative means show red.
func SentimentTimeline(points []sentiment.Point) string {
	var b strings.Builder
	b.WriteString(title("Sentiment timeline"))
	for _, p := range points {
		color := colorBar
		if p.Mean < 0 {
			color = colorNeg
		}
		b.WriteString(fmt.Sprintf("  %s  %s%+.3f%s\n", pad(p.Label, 15), color, p.Mean, colorReset))
	}
	return b.String()
}

// SentimentCounts renders the positive/negative/neutral distribution.
func SentimentCounts(c sentiment.Counts) string {
	max := c.Positive
	if c.Negative > max {
		max = c.Negative
	}
	if c.Neutral > max {
		max = c.Neutral
	}
	var b strings.Builder
	b.WriteString(title("Sentiment distribution"))
	b.WriteString(fmt.Sprintf("  Positive %6d  %s\n", c.Positive, bar(c.Positive, max)))
	b.WriteString(fmt.Sprintf("  Negative %6d  %s\n", c.Negative, bar(c.Negative, max)))
	b.WriteString(fmt.Sprintf("  Neutral  %6d  %s\n", c.Neutral, bar(c.Neutral, max)))
	return b.String()
}

// SentimentByUser renders each author's mean polarity, most positive first.
func SentimentByUser(means []sentiment.UserMean) string {
	var b strings.Builder
	b.WriteString(title("Sentiment by user"))
	for _, m := range means {
		color := colorBar
		if m.Mean < 0 {
			color = colorNeg
		}
		b.WriteString(fmt.Sprintf("  %s  %s%+.3f%s\n", pad(m.Author, 16), color, m.Mean, colorReset))
	}
	return b.String()
}

// Wrap breaks content into lines that fit within maxWidth visible columns,
// skipping ANSI escape sequences when measuring width. Used by the TUI
// panel, whose viewport clips rather than wraps.
func Wrap(content string, maxWidth int) string {
	if maxWidth <= 0 {
		return content
	}
	var out []string
	for _, line := range strings.Split(content, "\n") {
		out = append(out, wrapLine(line, maxWidth)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, maxWidth int) []string {
	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}
	if len(result) == 0 {
		return []string{""}
	}
	return result
}
