package order

import "time"

const dayKeyLayout = "20060102"

// DayKey derives the partition key for an instant: the calendar date in the
// reference timezone, formatted YYYYMMDD. Pure function of its inputs; the
// key is computed once at submission time and never changes for a record.
func DayKey(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format(dayKeyLayout)
}
