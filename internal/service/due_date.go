package service

import (
	"time"

	"cloud.google.com/go/civil"
)

// ComputeNextDue returns the date one frequency period after the base date,
// where the base is lastProcessed when set and startDate otherwise.
// Monthly and yearly steps clamp to the last day of the target month, so
// Jan 31 becomes Feb 28 (or 29) and Feb 29 becomes Feb 28 a year later.
// Frequencies outside the known set step monthly.
func ComputeNextDue(startDate civil.Date, frequency Frequency, lastProcessed *civil.Date) civil.Date {
	base := startDate
	if lastProcessed != nil {
		base = *lastProcessed
	}

	switch frequency {
	case FrequencyWeekly:
		return base.AddDays(7)
	case FrequencyYearly:
		return addMonths(base, 12)
	default:
		return addMonths(base, 1)
	}
}

func addMonths(d civil.Date, months int) civil.Date {
	firstOfTarget := time.Date(d.Year, d.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	day := d.Day
	if day > lastDay {
		day = lastDay
	}
	return civil.Date{Year: firstOfTarget.Year(), Month: firstOfTarget.Month(), Day: day}
}

// Today is the current calendar date in the server's location.
func Today() civil.Date {
	return civil.DateOf(time.Now())
}
