package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = "1/1/2024, 10:00 am - Alice: hello\n" +
	"1/1/2024, 10:05 am - Bob: hi there\n"

func TestParse(t *testing.T) {

	t.Run("parses author and body from each message", func(t *testing.T) {
		records, err := Parse(sampleExport)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Alice", records[0].Author)
		assert.Equal(t, "hello", records[0].Body)
		assert.Equal(t, 10, records[0].Hour)

		assert.Equal(t, "Bob", records[1].Author)
		assert.Equal(t, "hi there", records[1].Body)
		assert.Equal(t, 10, records[1].Hour)
	})

	t.Run("record count equals timestamp match count", func(t *testing.T) {
		raw := sampleExport + "2/1/2024, 9:15 pm - Alice: one more\n"
		records, err := Parse(raw)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("discards boilerplate before the first timestamp", func(t *testing.T) {
		raw := "Messages to this chat are secured.\n" + sampleExport
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Alice", records[0].Author)
	})

	t.Run("lines without an author prefix become notifications", func(t *testing.T) {
		raw := "1/1/2024, 9:59 am - Alice added Bob\n" + sampleExport
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, NotificationSender, records[0].Author)
		assert.True(t, records[0].IsNotification())
		assert.Equal(t, "Alice added Bob", records[0].Body)
	})

	t.Run("splits on the first colon only", func(t *testing.T) {
		raw := "1/1/2024, 10:00 am - Alice: note: buy milk\n"
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Alice", records[0].Author)
		assert.Equal(t, "note: buy milk", records[0].Body)
	})

	t.Run("colon with empty side routes to notification", func(t *testing.T) {
		raw := "1/1/2024, 10:00 am - Alice:\n"
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, NotificationSender, records[0].Author)
		assert.Equal(t, "Alice:", records[0].Body)
	})

	t.Run("accepts narrow no-break space before the meridiem", func(t *testing.T) {
		raw := "1/1/2024, 10:00 am - Alice: hello\n"
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 10, records[0].Hour)
	})

	t.Run("meridiem is case-insensitive", func(t *testing.T) {
		raw := "1/1/2024, 10:00 PM - Alice: hello\n"
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 22, records[0].Hour)
	})

	t.Run("empty input yields empty sequence, not an error", func(t *testing.T) {
		records, err := Parse("")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed date fails the whole parse", func(t *testing.T) {
		raw := sampleExport + "31/2/2024, 10:00 am - Alice: impossible day\n"
		records, err := Parse(raw)
		require.Error(t, err)
		assert.Nil(t, records)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, perr.Timestamp, "31/2/2024")
	})

	t.Run("reparsing yields an identical sequence", func(t *testing.T) {
		first, err := Parse(sampleExport)
		require.NoError(t, err)
		second, err := Parse(sampleExport)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("multi-line bodies stay attached to their record", func(t *testing.T) {
		raw := "1/1/2024, 10:00 am - Alice: first line\nsecond line\n" +
			"1/1/2024, 10:05 am - Bob: hi\n"
		records, err := Parse(raw)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, strings.Contains(records[0].Body, "second line"))
	})
}

func TestDerivedFields(t *testing.T) {
	raw := "5/3/2024, 11:42 pm - Alice: late one\n"
	records, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, time.Date(2024, time.March, 5, 23, 42, 0, 0, time.UTC), r.Time)
	assert.Equal(t, "Tuesday", r.DayName)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, 2024, r.Year)
	assert.Equal(t, 3, r.MonthNum)
	assert.Equal(t, "March", r.Month)
	assert.Equal(t, 5, r.Day)
	assert.Equal(t, 23, r.Hour)
	assert.Equal(t, 42, r.Minute)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "23-00", periodLabel(23))
	assert.Equal(t, "00-1", periodLabel(0))
	assert.Equal(t, "1-2", periodLabel(1))
	assert.Equal(t, "9-10", periodLabel(9))
	assert.Equal(t, "22-23", periodLabel(22))
}
