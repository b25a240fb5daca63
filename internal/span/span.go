// Package span breaks the gap between two instants into at most two
// adjacent time units, coarsest first.
package span

import "time"

// Unit identifies a reported time unit.
type Unit int

const (
	Minute Unit = iota
	Hour
	Day
	Week
	Month
	Year
)

// Part is one unit-count component of a breakdown.
type Part struct {
	Unit  Unit
	Count int
}

const (
	day  = 24 * time.Hour
	week = 7 * day

	// Fixed thresholds for bucket selection only. Counts inside the month
	// and year buckets come from calendar fields, never from these.
	monthThreshold = 2628000 * time.Second  // ~30.44 days
	yearThreshold  = 31536000 * time.Second // 365 days
)

// Breakdown returns the elapsed time between earlier and later as one or two
// parts. Argument order does not matter. The secondary part is dropped when
// its count is zero; a zero primary is kept, so a zero gap yields
// {Minute, 0}.
func Breakdown(earlier, later time.Time) []Part {
	if earlier.After(later) {
		earlier, later = later, earlier
	}
	elapsed := later.Sub(earlier)

	switch {
	case elapsed < time.Hour:
		return []Part{{Minute, int(elapsed / time.Minute)}}
	case elapsed < day:
		return parts(
			Part{Hour, int(elapsed / time.Hour)},
			Part{Minute, int(elapsed % time.Hour / time.Minute)},
		)
	case elapsed < week:
		return parts(
			Part{Day, int(elapsed / day)},
			Part{Hour, int(elapsed % day / time.Hour)},
		)
	}

	// A week or more: switch to midnight-aligned day granularity so that
	// intraday clock differences cannot shave a day off.
	switch {
	case elapsed < monthThreshold:
		days := daysBetween(earlier, later)
		return parts(
			Part{Week, days / 7},
			Part{Day, days % 7},
		)
	case elapsed < yearThreshold:
		months := MonthsBetween(earlier, later)
		// AddDate normalizes short months (Oct 31 + 4 months is Mar 2/3),
		// which can push the anchor a couple of days past later.
		remDays := daysBetween(earlier.AddDate(0, months, 0), later)
		if remDays < 0 {
			remDays = 0
		}
		return parts(
			Part{Month, months},
			Part{Week, remDays / 7},
		)
	default:
		years := later.Year() - earlier.Year()
		months := int(later.Month()) - int(earlier.Month())
		if months < 0 {
			years--
			months += 12
		}
		return parts(
			Part{Year, years},
			Part{Month, months},
		)
	}
}

// MonthsBetween counts full calendar months from earlier to later.
// A partial trailing month is not counted: Jan 31 to Mar 1 is one month.
func MonthsBetween(earlier, later time.Time) int {
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if later.Day() < earlier.Day() {
		months--
	}
	return months
}

// daysBetween counts civil days between the midnights of a and b.
// Rounding absorbs DST transitions, where a civil day is 23 or 25 hours.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Round(day) / day)
}

// midnight removes the time component, keeping the location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parts drops the secondary component when its count is zero.
func parts(primary, secondary Part) []Part {
	if secondary.Count == 0 {
		return []Part{primary}
	}
	return []Part{primary, secondary}
}
