package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// timestampRe matches the "D/M/YYYY, H:MM am - " prefix the export puts in
// front of every message. Some locales insert U+202F before the meridiem.
var timestampRe = regexp.MustCompile(`(?i)\d{1,2}/\d{1,2}/\d{4},\s\d{1,2}:\d{2}[\s\x{202F}]?[ap]m\s-\s`)

// trailingSepRe strips the " - " remainder off a matched timestamp.
var trailingSepRe = regexp.MustCompile(`\s-\s$`)

const timeLayout = "2/1/2006, 3:04 pm"

// ParseError reports a matched timestamp that failed strict date parsing.
// The parse is atomic, so a single ParseError discards the whole document.
type ParseError struct {
	Timestamp string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse timestamp %q: %v", e.Timestamp, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse splits an exported chat document into its ordered record sequence.
// Content before the first timestamp match (export-header boilerplate) is
// discarded. A document with no timestamp matches yields an empty sequence
// and no error.
func Parse(raw string) ([]Record, error) {
	matches := timestampRe.FindAllStringIndex(raw, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(matches))
	for i, m := range matches {
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		ts, err := parseTimestamp(raw[m[0]:m[1]])
		if err != nil {
			return nil, err
		}

		author, body := splitAuthor(raw[m[1]:end])
		records = append(records, newRecord(ts, author, body))
	}
	return records, nil
}

// parseTimestamp normalizes a matched timestamp and parses it strictly:
// collapse the non-breaking space around the meridiem, drop the trailing
// " - " separator, trim, lowercase the meridiem.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.ReplaceAll(s, " ", " ")
	s = trailingSepRe.ReplaceAllString(s, "")
	s = strings.ToLower(strings.TrimSpace(s))

	ts, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, &ParseError{Timestamp: s, Err: err}
	}
	return ts, nil
}

// splitAuthor separates "author: body" segments from group notifications.
// The split is on the first colon only, and both sides must be non-empty
// after trimming; anything else is a system line. A colon inside a genuine
// message before any author separator is a known ambiguity of the export
// format; the policy lives in this one function so it can be swapped and
// tested independently.
func splitAuthor(segment string) (author, body string) {
	left, right, found := strings.Cut(segment, ":")
	if found {
		author = strings.TrimSpace(left)
		body = strings.TrimSpace(right)
		if author != "" && body != "" {
			return author, body
		}
	}
	return NotificationSender, strings.TrimSpace(segment)
}

func newRecord(ts time.Time, author, body string) Record {
	return Record{
		Time:     ts,
		Author:   author,
		Body:     body,
		DayName:  ts.Weekday().String(),
		Date:     time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()),
		Year:     ts.Year(),
		MonthNum: int(ts.Month()),
		Month:    ts.Month().String(),
		Day:      ts.Day(),
		Hour:     ts.Hour(),
		Minute:   ts.Minute(),
		Period:   periodLabel(ts.Hour()),
	}
}

// periodLabel buckets an hour for the activity heatmap. The midnight edges
// keep the labels the dashboard historically used.
func periodLabel(hour int) string {
	switch hour {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	}
	return fmt.Sprintf("%d-%d", hour, hour+1)
}
