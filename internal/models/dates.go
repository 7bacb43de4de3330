package models

import "time"

const (
	dateInputLayout = "2006-01-02T15:04"
	calendarLayout  = "2006-01-02"
)

// layouts accepted for meetup dates; datetime-local inputs submit the first one.
var dateLayouts = []string{
	dateInputLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// When parses the meetup date. Dates without an offset are read in local time,
// a bare calendar date is read as UTC midnight.
func (m Meetup) When() (time.Time, bool) {
	return ParseDate(m.Date)
}

func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(calendarLayout, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DateInputValue renders raw the way a datetime-local input expects it, in
// local time. Values that do not parse come back unchanged.
func DateInputValue(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	if len(raw) != len(calendarLayout) {
		t = t.In(time.Local)
	}
	return t.Format(dateInputLayout)
}
