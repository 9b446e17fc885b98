package analytics

import (
	"fmt"
	"time"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
)

// Short month names in the reporting locale, indexed by time.Month.
var shortMonths = [...]string{"", "ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// startOfDay normalizes t to 00:00:00 in its own location. Bucket boundaries
// are calendar-day based, not instant based, so a filter date equal to a
// bucket's natural start is preserved exactly.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay normalizes t to 23:59:59.999 in its own location.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), shortMonths[t.Month()])
}

func weekLabel(t time.Time) string {
	// ISO-8601 week number paired with the start date's calendar year, not
	// the ISO year.
	_, week := t.ISOWeek()
	return fmt.Sprintf("S%d-%d", week, t.Year())
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", shortMonths[t.Month()], t.Year())
}

// minEnd clips a bucket's natural end to the overall range end.
func minEnd(natural, rangeEnd time.Time) time.Time {
	if natural.After(rangeEnd) {
		return rangeEnd
	}
	return natural
}

// GenerateCategories splits [start, end] into calendar-aligned buckets at the
// given granularity. Buckets are contiguous, non-overlapping and ordered; the
// first starts at start and the last ends at end even when the natural
// calendar period extends beyond the range. The cursor strictly advances
// every iteration, so the loop terminates for every granularity.
func GenerateCategories(start, end time.Time, g analytics.Granularity) []analytics.Category {
	cursor := startOfDay(start)
	rangeEnd := endOfDay(end)

	var categories []analytics.Category
	for !cursor.After(rangeEnd) {
		bucketStart := cursor
		var bucketEnd time.Time
		var label string

		switch g {
		case analytics.GranularityDay:
			bucketEnd = endOfDay(cursor)
			label = dayLabel(cursor)
			cursor = cursor.AddDate(0, 0, 1)
		case analytics.GranularityWeek:
			// Seven-day buckets anchored at the range start, not at Monday.
			bucketEnd = endOfDay(cursor.AddDate(0, 0, 6))
			label = weekLabel(cursor)
			cursor = cursor.AddDate(0, 0, 7)
		case analytics.GranularityMonth:
			// First bucket may start mid-month; it still ends at that
			// month's last day.
			bucketEnd = endOfDay(time.Date(cursor.Year(), cursor.Month()+1, 0, 0, 0, 0, 0, cursor.Location()))
			label = monthLabel(cursor)
			cursor = time.Date(cursor.Year(), cursor.Month()+1, 1, 0, 0, 0, 0, cursor.Location())
		default: // analytics.GranularityYear
			bucketEnd = endOfDay(time.Date(cursor.Year(), time.December, 31, 0, 0, 0, 0, cursor.Location()))
			label = fmt.Sprintf("%d", cursor.Year())
			cursor = time.Date(cursor.Year()+1, time.January, 1, 0, 0, 0, 0, cursor.Location())
		}

		categories = append(categories, analytics.Category{
			Label: label,
			Start: bucketStart,
			End:   minEnd(bucketEnd, rangeEnd),
		})
	}
	return categories
}

// DefaultGranularity picks a bucket size from the span length when the caller
// supplies none: up to a week of data is shown daily, up to two months
// weekly, up to a year monthly, anything longer yearly.
func DefaultGranularity(start, end time.Time) analytics.Granularity {
	days := int(endOfDay(end).Sub(startOfDay(start)).Hours()/24) + 1
	switch {
	case days <= 7:
		return analytics.GranularityDay
	case days <= 60:
		return analytics.GranularityWeek
	case days <= 365:
		return analytics.GranularityMonth
	default:
		return analytics.GranularityYear
	}
}
