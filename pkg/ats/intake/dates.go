package intake

import "time"

const dateLayout = "2006-01-02"

// dateLayouts are tried in order when a form date is not already in
// YYYY-MM-DD form.
var dateLayouts = []string{
	dateLayout,
	"02-01-2006",
	"02/01/2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// NormalizeDate coerces a form date string to a date. It is total: any
// input that cannot be parsed yields nil, never an error.
func NormalizeDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	return nil
}

// FormatDate renders a date back into the form's YYYY-MM-DD shape.
// A nil date renders as the empty string.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// NextFollowUpDate returns base plus one day, advancing one further day
// when that lands on a Sunday. The result is never a Sunday.
func NextFollowUpDate(base time.Time) time.Time {
	next := base.AddDate(0, 0, 1)
	if next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// CurrentDate returns today as YYYY-MM-DD.
func CurrentDate() string {
	return time.Now().Format(dateLayout)
}
