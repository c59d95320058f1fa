package nutrition

import "time"

const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, newValidationError("date", "must be in YYYY-MM-DD format")
	}
	return t, nil
}

// WeekBounds returns the Monday and Sunday of the ISO week containing date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	d := DateOf(date)
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the calendar month containing date.
func MonthBounds(date time.Time) (time.Time, time.Time) {
	d := DateOf(date)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// MonthSpan is the calendar month of date widened to whole ISO weeks on both ends.
func MonthSpan(date time.Time) (time.Time, time.Time) {
	first, last := MonthBounds(date)
	from, _ := WeekBounds(first)
	_, to := WeekBounds(last)
	return from, to
}

func within(d, from, to time.Time) bool {
	d = DateOf(d)
	return !d.Before(from) && !d.After(to)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
