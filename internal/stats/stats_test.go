package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatlens/chatlens/internal/parse"
)

// urlStub counts "http" prefixed tokens, standing in for the real detector.
type urlStub struct{}

func (urlStub) FindURLs(text string) []string {
	var urls []string
	for _, f := range strings.Fields(text) {
		if strings.HasPrefix(f, "http") {
			urls = append(urls, f)
		}
	}
	return urls
}

// emojiStub treats '*' and '#' as the only emoji runes.
type emojiStub struct{}

func (emojiStub) IsEmoji(r rune) bool { return r == '*' || r == '#' }

func mustParse(t *testing.T, raw string) []parse.Record {
	t.Helper()
	records, err := parse.Parse(raw)
	require.NoError(t, err)
	return records
}

func TestSummarize(t *testing.T) {
	records := mustParse(t,
		"1/1/2024, 10:00 am - Alice: hello\n"+
			"1/1/2024, 10:05 am - Bob: hi there\n")

	t.Run("overall totals", func(t *testing.T) {
		s := Summarize(records, Overall, urlStub{})
		assert.Equal(t, Summary{Messages: 2, Words: 3, Media: 0, Links: 0}, s)
	})

	t.Run("empty filter means overall", func(t *testing.T) {
		assert.Equal(t, Summarize(records, Overall, urlStub{}), Summarize(records, "", urlStub{}))
	})

	t.Run("single author filter", func(t *testing.T) {
		s := Summarize(records, "Bob", urlStub{})
		assert.Equal(t, Summary{Messages: 1, Words: 2}, s)
	})

	t.Run("media marker counts as media and its own words", func(t *testing.T) {
		withMedia := mustParse(t, "1/1/2024, 10:00 am - Alice: <Media omitted>\n")
		s := Summarize(withMedia, Overall, urlStub{})
		assert.Equal(t, 1, s.Media)
		assert.Equal(t, 2, s.Words) // the literal marker still tokenizes
		assert.Equal(t, 0, s.Links)
	})

	t.Run("duplicate links in one message all count", func(t *testing.T) {
		withLinks := mustParse(t, "1/1/2024, 10:00 am - Alice: http://a.com http://a.com\n")
		s := Summarize(withLinks, Overall, urlStub{})
		assert.Equal(t, 2, s.Links)
	})

	t.Run("empty record set yields zero totals", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil, Overall, urlStub{}))
	})
}

func TestTimelines(t *testing.T) {
	records := mustParse(t,
		"30/1/2024, 10:00 am - Alice: a\n"+
			"31/1/2024, 10:00 am - Bob: b\n"+
			"31/1/2024, 11:00 am - Alice: c\n"+
			"1/2/2024, 10:00 am - Alice: d\n"+
			"1/1/2025, 10:00 am - Bob: e\n")

	t.Run("monthly timeline is chronological with labels", func(t *testing.T) {
		rows := MonthlyTimeline(records, Overall)
		require.Len(t, rows, 3)
		assert.Equal(t, MonthCount{Year: 2024, MonthNum: 1, Month: "January", Label: "January-2024", Messages: 3}, rows[0])
		assert.Equal(t, "February-2024", rows[1].Label)
		assert.Equal(t, "January-2025", rows[2].Label)
	})

	t.Run("daily timeline has one row per distinct date", func(t *testing.T) {
		rows := DailyTimeline(records, Overall)
		require.Len(t, rows, 4)
		assert.Equal(t, 2, rows[1].Messages) // 31/1 has two messages
		for i := 1; i < len(rows); i++ {
			assert.True(t, rows[i-1].Date.Before(rows[i].Date))
		}
	})

	t.Run("timelines respect the author filter", func(t *testing.T) {
		rows := DailyTimeline(records, "Alice")
		require.Len(t, rows, 3)
		rowsM := MonthlyTimeline(records, "Bob")
		require.Len(t, rowsM, 2)
	})

	t.Run("empty records produce empty timelines", func(t *testing.T) {
		assert.Empty(t, MonthlyTimeline(nil, Overall))
		assert.Empty(t, DailyTimeline(nil, Overall))
	})
}

func TestActivity(t *testing.T) {
	// 1/1/2024 is a Monday, 2/1/2024 a Tuesday.
	records := mustParse(t,
		"1/1/2024, 10:00 am - Alice: a\n"+
			"1/1/2024, 11:00 am - Bob: b\n"+
			"2/1/2024, 10:00 am - Alice: c\n")

	t.Run("weekly activity descending by count", func(t *testing.T) {
		rows := WeeklyActivity(records, Overall)
		require.Len(t, rows, 2)
		assert.Equal(t, NameCount{Name: "Monday", Count: 2}, rows[0])
		assert.Equal(t, NameCount{Name: "Tuesday", Count: 1}, rows[1])
	})

	t.Run("ties keep first-appearance order", func(t *testing.T) {
		tied := mustParse(t,
			"3/1/2024, 10:00 am - Alice: a\n"+ // Wednesday
				"4/1/2024, 10:00 am - Bob: b\n") // Thursday
		rows := WeeklyActivity(tied, Overall)
		require.Len(t, rows, 2)
		assert.Equal(t, "Wednesday", rows[0].Name)
		assert.Equal(t, "Thursday", rows[1].Name)
	})

	t.Run("monthly activity counts month names", func(t *testing.T) {
		rows := MonthlyActivity(records, Overall)
		require.Len(t, rows, 1)
		assert.Equal(t, NameCount{Name: "January", Count: 3}, rows[0])
	})
}

func TestActivityHeatmap(t *testing.T) {
	records := mustParse(t,
		"1/1/2024, 10:00 am - Alice: a\n"+ // Monday 10
			"1/1/2024, 10:30 am - Bob: b\n"+ // Monday 10
			"2/1/2024, 11:00 pm - Alice: c\n"+ // Tuesday 23
			"7/1/2024, 12:10 am - Alice: d\n") // Sunday 0

	h := ActivityHeatmap(records, Overall)

	assert.Equal(t, []string{"Monday", "Tuesday", "Sunday"}, h.Days)
	assert.Equal(t, []string{"00-1", "10-11", "23-00"}, h.Periods)

	require.Len(t, h.Counts, 3)
	assert.Equal(t, []int{0, 2, 0}, h.Counts[0]) // Monday
	assert.Equal(t, []int{0, 0, 1}, h.Counts[1]) // Tuesday
	assert.Equal(t, []int{1, 0, 0}, h.Counts[2]) // Sunday

	t.Run("empty records give an empty pivot", func(t *testing.T) {
		empty := ActivityHeatmap(nil, Overall)
		assert.Empty(t, empty.Days)
		assert.Empty(t, empty.Periods)
	})
}

func TestTopUsers(t *testing.T) {
	records := mustParse(t,
		"1/1/2024, 10:00 am - Alice: a\n"+
			"1/1/2024, 10:01 am - Alice: b\n"+
			"1/1/2024, 10:02 am - Bob: c\n"+
			"1/1/2024, 10:03 am - group changed the subject\n")

	top, shares := TopUsers(records, 5)

	require.Len(t, top, 3)
	assert.Equal(t, NameCount{Name: "Alice", Count: 2}, top[0])

	require.Len(t, shares, 3)
	assert.Equal(t, UserShare{Name: "Alice", Percent: 50}, shares[0])
	assert.Equal(t, UserShare{Name: "Bob", Percent: 25}, shares[1])
	assert.Equal(t, UserShare{Name: parse.NotificationSender, Percent: 25}, shares[2])

	t.Run("n caps the ranked rows", func(t *testing.T) {
		top, _ := TopUsers(records, 2)
		assert.Len(t, top, 2)
	})
}

func TestEmojiFrequency(t *testing.T) {
	records := mustParse(t,
		"1/1/2024, 10:00 am - Alice: hi * and #\n"+
			"1/1/2024, 10:01 am - Alice: again *\n"+
			"1/1/2024, 10:02 am - Bob: plain text\n"+
			"1/1/2024, 10:03 am - Bob: ##\n")

	t.Run("glyph counts descending", func(t *testing.T) {
		rows := EmojiFrequency(records, Overall, emojiStub{})
		require.Len(t, rows, 2)
		assert.Equal(t, NameCount{Name: "#", Count: 3}, rows[0])
		assert.Equal(t, NameCount{Name: "*", Count: 2}, rows[1])
	})

	t.Run("ties keep first-appearance order", func(t *testing.T) {
		tied := mustParse(t, "1/1/2024, 10:00 am - Cara: # then *\n")
		rows := EmojiFrequency(tied, Overall, emojiStub{})
		require.Len(t, rows, 2)
		assert.Equal(t, NameCount{Name: "#", Count: 1}, rows[0])
		assert.Equal(t, NameCount{Name: "*", Count: 1}, rows[1])
	})

	t.Run("author filter applies", func(t *testing.T) {
		rows := EmojiFrequency(records, "Bob", emojiStub{})
		require.Len(t, rows, 1)
		assert.Equal(t, NameCount{Name: "#", Count: 2}, rows[0])
	})

	t.Run("no emoji yields empty table", func(t *testing.T) {
		assert.Empty(t, EmojiFrequency(nil, Overall, emojiStub{}))
	})
}

func TestAuthors(t *testing.T) {
	records := mustParse(t,
		"1/1/2024, 10:00 am - Bob: a\n"+
			"1/1/2024, 10:01 am - Alice: b\n"+
			"1/1/2024, 10:02 am - Bob: c\n"+
			"1/1/2024, 10:03 am - group changed the subject\n")

	assert.Equal(t, []string{"Bob", "Alice"}, Authors(records))
	assert.Empty(t, Authors(nil))
}
