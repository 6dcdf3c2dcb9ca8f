package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatlens/chatlens/internal/parse"
)

// emojiStub treats '*' as the only emoji rune.
type emojiStub struct{}

func (emojiStub) IsEmoji(r rune) bool { return r == '*' }

// urlStub counts "http" prefixed tokens.
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

func mustParse(t *testing.T, raw string) []parse.Record {
	t.Helper()
	records, err := parse.Parse(raw)
	require.NoError(t, err)
	return records
}

func TestBuild(t *testing.T) {

	t.Run("one row per author, notifications excluded", func(t *testing.T) {
		records := mustParse(t,
			"1/1/2024, 10:00 am - Alice: hi\n"+
				"1/1/2024, 10:01 am - Bob: hello there friend\n"+
				"1/1/2024, 10:02 am - Alice added Bob\n")
		profiles := Build(records, emojiStub{}, urlStub{})
		require.Len(t, profiles, 2)
		assert.Equal(t, "Alice", profiles[0].Author)
		assert.Equal(t, "Bob", profiles[1].Author)
	})

	t.Run("counting metrics", func(t *testing.T) {
		records := mustParse(t,
			"1/1/2024, 10:00 am - Alice: one two three four\n"+
				"1/1/2024, 11:00 am - Alice: hi **\n"+
				"2/1/2024, 10:00 am - Alice: <Media omitted>\n"+
				"2/1/2024, 11:00 am - Alice: see http://a.com\n")
		profiles := Build(records, emojiStub{}, urlStub{})
		require.Len(t, profiles, 1)
		p := profiles[0]

		assert.Equal(t, 4, p.TotalMessages)
		assert.Equal(t, 2, p.ActiveDays)
		assert.Equal(t, 2.0, p.PerDay)
		assert.Equal(t, 2.5, p.AvgWords) // (4+2+2+2)/4
		assert.Equal(t, 0.5, p.EmojiPerMsg)
		assert.Equal(t, 0.25, p.EmojiMsgRatio)
		assert.Equal(t, 0.25, p.MediaRatio)
		assert.Equal(t, 0.25, p.LinkRatio)
		assert.Equal(t, 0.0, p.NightRatio)
		assert.Equal(t, 0.75, p.ShortRatio)
		assert.Equal(t, 0.0, p.LongRatio)
	})

	t.Run("messages per day never exceeds total messages", func(t *testing.T) {
		records := mustParse(t,
			"1/1/2024, 10:00 am - Alice: a\n"+
				"2/1/2024, 10:00 am - Alice: b\n"+
				"3/1/2024, 10:00 am - Alice: c\n")
		p := Build(records, emojiStub{}, urlStub{})[0]
		assert.LessOrEqual(t, p.PerDay, float64(p.TotalMessages))
		assert.Equal(t, 1.0, p.PerDay)
	})

	t.Run("night ratio covers hours 0 through 5", func(t *testing.T) {
		records := mustParse(t,
			"1/1/2024, 12:30 am - Alice: a\n"+ // hour 0
				"1/1/2024, 5:59 am - Alice: b\n"+ // hour 5
				"1/1/2024, 6:00 am - Alice: c\n"+ // hour 6, not night
				"1/1/2024, 11:00 pm - Alice: d\n") // hour 23, not night
		p := Build(records, emojiStub{}, urlStub{})[0]
		assert.Equal(t, 0.5, p.NightRatio)
	})

	t.Run("modal hour and day with deterministic tie-break", func(t *testing.T) {
		// Equal counts at hours 9 and 14, and on Monday and Tuesday.
		records := mustParse(t,
			"1/1/2024, 9:00 am - Alice: a\n"+ // Monday 9
				"2/1/2024, 2:00 pm - Alice: b\n") // Tuesday 14
		p := Build(records, emojiStub{}, urlStub{})[0]
		assert.Equal(t, 9, p.TopHour)
		assert.Equal(t, "Monday", p.TopDay)
	})

	t.Run("long message ratio", func(t *testing.T) {
		long := strings.Repeat("word ", 15)
		records := mustParse(t,
			"1/1/2024, 10:00 am - Alice: "+long+"\n"+
				"1/1/2024, 10:01 am - Alice: short\n")
		p := Build(records, emojiStub{}, urlStub{})[0]
		assert.Equal(t, 0.5, p.LongRatio)
	})

	t.Run("empty record set yields no profiles", func(t *testing.T) {
		assert.Empty(t, Build(nil, emojiStub{}, urlStub{}))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.12, round2(0.125)) // half-to-even
	assert.Equal(t, 0.38, round2(0.375))
	assert.Equal(t, 0.67, round2(2.0/3.0))
	assert.Equal(t, 1.0, round2(1.0))
}
