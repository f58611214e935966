package features

import "time"

// DateLayout is the calendar-date format used on every dated resource.
// Lexicographic order of these strings equals chronological order.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current UTC calendar date.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// WeekStart returns the Monday of the current UTC calendar week.
func WeekStart() string {
	now := time.Now().UTC()
	offset := (int(now.Weekday()) + 6) % 7
	return now.AddDate(0, 0, -offset).Format(DateLayout)
}
