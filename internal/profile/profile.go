// Package profile computes per-author behavior metrics and the composite
// engagement score over a parsed record sequence. Notification records are
// excluded up front; every remaining author gets exactly one row.
package profile

import (
	"math"
	"strings"
	"time"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/parse"
	"github.com/chatlens/chatlens/internal/stats"
)

// Profile is one author's behavior row. All float metrics are rounded
// half-to-even at 2 decimals.
type Profile struct {
	Author        string
	TotalMessages int
	ActiveDays    int     // distinct dates with at least one message
	PerDay        float64 // messages per active day
	AvgWords      float64
	EmojiPerMsg   float64
	EmojiMsgRatio float64 // messages containing at least one emoji
	MediaRatio    float64
	LinkRatio     float64
	NightRatio    float64 // hour in [0,5]
	ShortRatio    float64 // <=3 words
	LongRatio     float64 // >=15 words
	TopHour       int     // modal hour, lowest value on ties
	TopDay        string  // modal day name, earliest in the week on ties
}

// Build derives one Profile per distinct author, in first-seen order. The
// emoji and URL detectors are passed in so callers (and tests) control the
// classification policy.
func Build(records []parse.Record, emoji detect.EmojiDetector, urls detect.URLDetector) []Profile {
	var profiles []Profile
	for _, author := range stats.Authors(records) {
		profiles = append(profiles, build(stats.Filter(records, author), author, emoji, urls))
	}
	return profiles
}

func build(records []parse.Record, author string, emoji detect.EmojiDetector, urls detect.URLDetector) Profile {
	total := len(records)

	days := make(map[time.Time]bool)
	hourCounts := make(map[int]int)
	dayCounts := make(map[string]int)
	var words, emojis int
	var emojiMsgs, mediaMsgs, linkMsgs, nightMsgs, shortMsgs, longMsgs int

	for _, r := range records {
		days[r.Date] = true
		hourCounts[r.Hour]++
		dayCounts[r.DayName]++

		n := len(strings.Fields(r.Body))
		words += n
		if n <= 3 {
			shortMsgs++
		}
		if n >= 15 {
			longMsgs++
		}

		found := 0
		for _, c := range r.Body {
			if emoji.IsEmoji(c) {
				found++
			}
		}
		emojis += found
		if found > 0 {
			emojiMsgs++
		}

		if r.Body == stats.MediaMarker {
			mediaMsgs++
		}
		if len(urls.FindURLs(r.Body)) > 0 {
			linkMsgs++
		}
		if r.Hour <= 5 {
			nightMsgs++
		}
	}

	ft := float64(total)
	return Profile{
		Author:        author,
		TotalMessages: total,
		ActiveDays:    len(days),
		PerDay:        round2(ft / float64(len(days))),
		AvgWords:      round2(float64(words) / ft),
		EmojiPerMsg:   round2(float64(emojis) / ft),
		EmojiMsgRatio: round2(float64(emojiMsgs) / ft),
		MediaRatio:    round2(float64(mediaMsgs) / ft),
		LinkRatio:     round2(float64(linkMsgs) / ft),
		NightRatio:    round2(float64(nightMsgs) / ft),
		ShortRatio:    round2(float64(shortMsgs) / ft),
		LongRatio:     round2(float64(longMsgs) / ft),
		TopHour:       modalHour(hourCounts),
		TopDay:        modalDay(dayCounts),
	}
}

// modalHour picks the most frequent hour; ties go to the lowest hour.
func modalHour(counts map[int]int) int {
	best, bestCount := 0, -1
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > bestCount {
			best, bestCount = hour, counts[hour]
		}
	}
	return best
}

var weekOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// modalDay picks the most frequent day name; ties go to the earliest day of
// a Monday-first week.
func modalDay(counts map[string]int) string {
	best, bestCount := "", -1
	for _, day := range weekOrder {
		if counts[day] > bestCount {
			best, bestCount = day, counts[day]
		}
	}
	return best
}

// round2 rounds half-to-even at 2 decimal places, the one rounding policy
// used for every derived metric.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
