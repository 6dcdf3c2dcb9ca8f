// Package stats derives read-side views over a parsed record sequence.
// Every function is pure: records in, table out, no shared state, so views
// for different author selections can run independently.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/parse"
)

// Overall selects all authors; it matches the selector value the dashboard
// exposes. An empty author filter means the same thing.
const Overall = "Overall"

// MediaMarker is the body the export substitutes for omitted attachments.
const MediaMarker = "<Media omitted>"

var weekOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Filter narrows records to one author, or returns them unchanged for the
// Overall selection.
func Filter(records []parse.Record, author string) []parse.Record {
	if author == "" || author == Overall {
		return records
	}
	var out []parse.Record
	for _, r := range records {
		if r.Author == author {
			out = append(out, r)
		}
	}
	return out
}

// Authors lists the distinct non-notification authors in first-seen order.
func Authors(records []parse.Record) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if r.IsNotification() || seen[r.Author] {
			continue
		}
		seen[r.Author] = true
		out = append(out, r.Author)
	}
	return out
}

// Summary are the headline totals for a (possibly filtered) record set.
type Summary struct {
	Messages int
	Words    int // whitespace-separated tokens across all bodies
	Media    int // bodies equal to the media marker
	Links    int // URL matches, duplicates counted
}

// Summarize computes the headline totals. Notification records count toward
// the Overall totals like any other record.
func Summarize(records []parse.Record, author string, urls detect.URLDetector) Summary {
	var s Summary
	for _, r := range Filter(records, author) {
		s.Messages++
		s.Words += len(strings.Fields(r.Body))
		if r.Body == MediaMarker {
			s.Media++
		}
		s.Links += len(urls.FindURLs(r.Body))
	}
	return s
}

// MonthCount is one row of the monthly timeline.
type MonthCount struct {
	Year     int
	MonthNum int
	Month    string
	Label    string // "January-2024"
	Messages int
}

// MonthlyTimeline counts messages per (year, month), chronologically.
func MonthlyTimeline(records []parse.Record, author string) []MonthCount {
	counts := make(map[[2]int]*MonthCount)
	for _, r := range Filter(records, author) {
		key := [2]int{r.Year, r.MonthNum}
		row, ok := counts[key]
		if !ok {
			row = &MonthCount{
				Year:     r.Year,
				MonthNum: r.MonthNum,
				Month:    r.Month,
				Label:    fmt.Sprintf("%s-%d", r.Month, r.Year),
			}
			counts[key] = row
		}
		row.Messages++
	}

	out := make([]MonthCount, 0, len(counts))
	for _, row := range counts {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].MonthNum < out[j].MonthNum
	})
	return out
}

// DayCount is one row of the daily timeline.
type DayCount struct {
	Date     time.Time
	Messages int
}

// DailyTimeline counts messages per calendar date, ascending.
func DailyTimeline(records []parse.Record, author string) []DayCount {
	counts := make(map[time.Time]int)
	for _, r := range Filter(records, author) {
		counts[r.Date]++
	}

	out := make([]DayCount, 0, len(counts))
	for date, n := range counts {
		out = append(out, DayCount{Date: date, Messages: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// NameCount is a frequency table row.
type NameCount struct {
	Name  string
	Count int
}

// WeeklyActivity counts messages per day name, busiest first. Ties keep the
// first-appearance order of the record sequence.
func WeeklyActivity(records []parse.Record, author string) []NameCount {
	return frequency(Filter(records, author), func(r parse.Record) string { return r.DayName })
}

// MonthlyActivity counts messages per month name, busiest first.
func MonthlyActivity(records []parse.Record, author string) []NameCount {
	return frequency(Filter(records, author), func(r parse.Record) string { return r.Month })
}

func frequency(records []parse.Record, key func(parse.Record) string) []NameCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		k := key(r)
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]NameCount, 0, len(order))
	for _, k := range order {
		out = append(out, NameCount{Name: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// EmojiFrequency counts individual emoji glyphs across the (possibly
// filtered) record set, most frequent first. Ties keep the first-appearance
// order, like the other frequency views.
func EmojiFrequency(records []parse.Record, author string, emoji detect.EmojiDetector) []NameCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range Filter(records, author) {
		for _, c := range r.Body {
			if !emoji.IsEmoji(c) {
				continue
			}
			g := string(c)
			if _, ok := counts[g]; !ok {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	out := make([]NameCount, 0, len(order))
	for _, g := range order {
		out = append(out, NameCount{Name: g, Count: counts[g]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Heatmap is a day-name by hour-period pivot of message counts. Rows and
// columns cover only the days/periods present in the filtered set, in
// Monday-first and hour order; absent cells are zero.
type Heatmap struct {
	Days    []string
	Periods []string
	Counts  [][]int // Counts[day][period]
}

// ActivityHeatmap pivots message counts by day name and hour period.
func ActivityHeatmap(records []parse.Record, author string) Heatmap {
	filtered := Filter(records, author)

	cell := make(map[string]map[int]int) // day -> hour -> count
	daysPresent := make(map[string]bool)
	hoursPresent := make(map[int]bool)
	for _, r := range filtered {
		if cell[r.DayName] == nil {
			cell[r.DayName] = make(map[int]int)
		}
		cell[r.DayName][r.Hour]++
		daysPresent[r.DayName] = true
		hoursPresent[r.Hour] = true
	}

	// Period labels derive from the hour, so take them from the records
	// rather than reconstruct the formatting here.
	labels := make(map[int]string)
	for _, r := range filtered {
		labels[r.Hour] = r.Period
	}

	var h Heatmap
	for _, day := range weekOrder {
		if daysPresent[day] {
			h.Days = append(h.Days, day)
		}
	}
	var hours []int
	for hour := 0; hour < 24; hour++ {
		if hoursPresent[hour] {
			hours = append(hours, hour)
			h.Periods = append(h.Periods, labels[hour])
		}
	}

	h.Counts = make([][]int, len(h.Days))
	for i, day := range h.Days {
		h.Counts[i] = make([]int, len(hours))
		for j, hour := range hours {
			h.Counts[i][j] = cell[day][hour]
		}
	}
	return h
}

// UserShare is one row of the percentage-of-total table.
type UserShare struct {
	Name    string
	Percent float64 // 2-decimal share of all messages
}

// TopUsers ranks authors by message count. It returns the top n rows plus
// the full share table over every author, notification sentinel included;
// in practice the sentinel drops out of the top ranks by volume, not by
// design. Ties keep first-appearance order.
func TopUsers(records []parse.Record, n int) ([]NameCount, []UserShare) {
	ranked := frequency(records, func(r parse.Record) string { return r.Author })

	top := ranked
	if len(top) > n {
		top = top[:n]
	}

	shares := make([]UserShare, 0, len(ranked))
	for _, row := range ranked {
		shares = append(shares, UserShare{
			Name:    row.Name,
			Percent: round2(float64(row.Count) / float64(len(records)) * 100),
		})
	}
	return top, shares
}

// round2 rounds half-to-even at 2 decimal places, the rounding policy used
// across all derived metrics.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
