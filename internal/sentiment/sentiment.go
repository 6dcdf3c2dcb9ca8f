// Package sentiment derives polarity views over the record sequence. The
// scoring itself is an injected capability so the views stay deterministic
// under test; the production implementation wraps the VADER lexicon.
package sentiment

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jonreiter/govader"

	"github.com/chatlens/chatlens/internal/parse"
	"github.com/chatlens/chatlens/internal/stats"
)

// Scorer produces a compound polarity score in [-1, 1] for a message body.
type Scorer interface {
	Compound(text string) float64
}

// Vader scores text with the govader port of the VADER lexicon.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// Thresholds for labeling a compound score.
const (
	positiveAbove = 0.05
	negativeBelow = -0.05
)

// Freq selects the sentiment timeline bucket size.
type Freq int

const (
	Daily Freq = iota
	Monthly
)

// Point is one sentiment timeline bucket.
type Point struct {
	Date  time.Time // bucket start
	Label string    // "2024-01-02" or "January-2024"
	Mean  float64
}

// scorable drops the records sentiment never sees: notifications and
// media-omitted placeholders.
func scorable(records []parse.Record, author string) []parse.Record {
	var out []parse.Record
	for _, r := range stats.Filter(records, author) {
		if r.IsNotification() || r.Body == stats.MediaMarker {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Timeline computes the mean compound score per day or per month,
// chronologically.
func Timeline(records []parse.Record, author string, freq Freq, scorer Scorer) []Point {
	type bucket struct {
		date  time.Time
		label string
		sum   float64
		n     int
	}

	buckets := make(map[time.Time]*bucket)
	for _, r := range scorable(records, author) {
		date, label := r.Date, r.Date.Format("2006-01-02")
		if freq == Monthly {
			date = time.Date(r.Year, time.Month(r.MonthNum), 1, 0, 0, 0, 0, r.Date.Location())
			label = fmt.Sprintf("%s-%d", r.Month, r.Year)
		}
		b, ok := buckets[date]
		if !ok {
			b = &bucket{date: date, label: label}
			buckets[date] = b
		}
		b.sum += scorer.Compound(r.Body)
		b.n++
	}

	out := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Point{Date: b.date, Label: b.label, Mean: b.sum / float64(b.n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Counts is the distribution of sentiment labels over a record set.
type Counts struct {
	Positive int
	Negative int
	Neutral  int
}

// Distribution labels every scorable message and tallies the labels.
func Distribution(records []parse.Record, author string, scorer Scorer) Counts {
	var c Counts
	for _, r := range scorable(records, author) {
		switch score := scorer.Compound(r.Body); {
		case score > positiveAbove:
			c.Positive++
		case score < negativeBelow:
			c.Negative++
		default:
			c.Neutral++
		}
	}
	return c
}

// UserMean is one author's average compound score.
type UserMean struct {
	Author string
	Mean   float64 // rounded to 3 decimals
}

// ByUser computes each author's mean compound score, most positive first.
// Ties keep first-seen author order.
func ByUser(records []parse.Record, scorer Scorer) []UserMean {
	scored := scorable(records, stats.Overall)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range scored {
		sums[r.Author] += scorer.Compound(r.Body)
		counts[r.Author]++
	}

	out := make([]UserMean, 0, len(counts))
	for _, author := range stats.Authors(scored) {
		out = append(out, UserMean{
			Author: author,
			Mean:   round3(sums[author] / float64(counts[author])),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mean > out[j].Mean })
	return out
}

func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}
