package schedule

import "time"

// Date is a calendar date without a time-of-day. All scheduling decisions
// that talk about "days" compare Dates, never instants.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight at the start of d in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return o.Before(d) }

// String returns d in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Time(time.UTC).Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Weekday returns the day of week of d, Monday=1 .. Sunday=7.
func (d Date) Weekday() int {
	return isoWeekday(d.Time(time.UTC).Weekday())
}

// DaysBetween returns the number of whole days from a to b (negative when b
// precedes a). Computed in UTC so daylight-saving shifts cannot skew the
// count.
func DaysBetween(a, b Date) int {
	return int(b.Time(time.UTC).Sub(a.Time(time.UTC)) / (24 * time.Hour))
}

// isoWeekday remaps Go's Sunday=0 weekday convention to Monday=1..Sunday=7.
// This is the single point where the platform numbering enters the package.
func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}
