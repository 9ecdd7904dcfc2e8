package plan

import (
	"fmt"
	"time"
)

// Date is a local calendar date with no time-of-day or timezone component.
// Weekly plans key everything off calendar dates, and deriving those from
// timestamps shifts the day across a UTC boundary for users west of
// Greenwich, so dates are carried as plain year/month/day throughout.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf truncates a time.Time to its local calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON emits the date as a YYYY-MM-DD string so cached plans stay
// readable and the key format matches what clients send.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// toTime anchors the date at local midnight, used only for arithmetic and
// range queries against the store.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date n days later, handling month and year rollover.
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// Weekday returns the day-of-week name for the date.
func (d Date) Weekday() string {
	return d.toTime().Weekday().String()
}

// Before reports whether d falls strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// WeekStart returns the Monday on or before the date. The week grid runs
// Monday through Sunday and plans are cached under this date's string form.
func (d Date) WeekStart() Date {
	weekday := int(d.toTime().Weekday()) // 0 = Sunday
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDays(1 - weekday)
}
