package parse

import "time"

// NotificationSender is the author assigned to system-generated lines that
// carry no "author: " prefix ("X added Y", encryption notices, ...).
const NotificationSender = "group_notification"

// Record is one parsed chat message or group event. Records are never
// mutated after parsing; every aggregation recomputes from the slice.
type Record struct {
	Time   time.Time // minute resolution
	Author string    // NotificationSender for system lines
	Body   string    // text with the "author: " prefix stripped

	// Calendar fields, derived from Time at parse time.
	DayName  string    // "Monday".."Sunday"
	Date     time.Time // Time with the time-of-day zeroed
	Year     int
	MonthNum int    // 1..12
	Month    string // "January".."December"
	Day      int
	Hour     int
	Minute   int
	Period   string // heatmap hour bucket: "9-10", "23-00", "00-1"
}

// IsNotification reports whether the record is a system line rather than a
// user message.
func (r Record) IsNotification() bool {
	return r.Author == NotificationSender
}
