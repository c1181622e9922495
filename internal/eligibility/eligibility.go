// Package eligibility computes naturalization residency statistics from a
// user's trips and green-card date.
//
// Compute is a pure function of (now, green-card date, trip set): it performs
// no I/O, owns no state, and never mutates its inputs, so it may be called
// concurrently without coordination. Callers pass "now" explicitly so every
// scenario is reproducible in tests.
package eligibility

import (
	"math"
	"time"

	"github.com/nkoval/greencard-days/backend/internal/domain"
)

const (
	// MaxDaysAllowed is the 30-month ceiling on days outside the US within
	// the statutory period (8 CFR 316.5 continuous-residence math).
	MaxDaysAllowed = 913

	// SingleTripLimit is the one-year-per-trip rule. It is surfaced as a
	// display warning only, never enforced as a validation error.
	SingleTripLimit = 365

	// rollingWindow is the lookback used when no green-card date is set.
	// Deliberately a fixed 5x365-day duration, not calendar arithmetic;
	// the green-card path below uses true calendar years instead. The two
	// are inconsistent on purpose: the legal intent is ambiguous, and
	// unifying them would be guessing.
	rollingWindow = 5 * 365 * 24 * time.Hour
)

// Compute derives a Stats snapshot from the trip set and optional green-card
// date as of now. Trips whose return date falls entirely before the tracked
// period are ignored; trips straddling the period start are clipped; trips
// departing strictly after now count as planned, unclipped.
//
// Compute is total over well-formed inputs (departure <= return, valid
// dates); it has no error return. Upstream validation guarantees the inputs.
func Compute(now time.Time, greenCardDate *time.Time, trips []domain.Trip) domain.Stats {
	stats := domain.Stats{
		GreenCardDate: greenCardDate,
		TripCount:     len(trips),
	}

	if greenCardDate != nil {
		stats.PeriodStart = *greenCardDate
		elig := greenCardDate.AddDate(5, 0, 0) // calendar years, leap-aware
		stats.EligibilityDate = &elig
	} else {
		stats.PeriodStart = now.Add(-rollingWindow)
	}

	for _, trip := range trips {
		// Entirely before the tracked period: contributes nothing, not
		// even to the longest-trip figure.
		if trip.ReturnDate.Before(stats.PeriodStart) {
			continue
		}

		fullTripDays := inclusiveDayCount(trip.DepartureDate, trip.ReturnDate)
		if fullTripDays > stats.LongestTrip {
			stats.LongestTrip = fullTripDays
		}

		if trip.DepartureDate.After(now) {
			// Planned trip: full length counts, no clipping to the window.
			stats.PlannedTripCount++
			stats.PlannedDaysOutside += fullTripDays
			continue
		}

		// Past or in-progress: clip to [periodStart, now].
		stats.PastTripCount++
		effectiveStart := trip.DepartureDate
		if effectiveStart.Before(stats.PeriodStart) {
			effectiveStart = stats.PeriodStart
		}
		effectiveEnd := trip.ReturnDate
		if effectiveEnd.After(now) {
			effectiveEnd = now
		}
		if !effectiveStart.After(now) {
			stats.TotalDaysOutside += inclusiveDayCount(effectiveStart, effectiveEnd)
		}
	}

	stats.ProjectedTotalDays = stats.TotalDaysOutside + stats.PlannedDaysOutside
	stats.DaysRemaining = max(0, MaxDaysAllowed-stats.TotalDaysOutside)
	stats.ProjectedDaysRemaining = max(0, MaxDaysAllowed-stats.ProjectedTotalDays)
	stats.PercentUsed = percentOfCeiling(stats.TotalDaysOutside)
	stats.ProjectedPercentUsed = percentOfCeiling(stats.ProjectedTotalDays)
	stats.WarningLevel = WarningLevelFor(stats.PercentUsed)
	stats.ProjectedWarningLevel = WarningLevelFor(stats.ProjectedPercentUsed)
	stats.LongestTripOverLimit = stats.LongestTrip > SingleTripLimit

	if stats.EligibilityDate != nil {
		days := int(math.Ceil(stats.EligibilityDate.Sub(now).Hours() / 24))
		if days < 0 {
			days = 0
		}
		stats.DaysUntilEligible = &days
	}

	return stats
}

// WarningLevelFor classifies a percentage of the day ceiling into the
// three-tier warning scale: >=90 danger, >=70 caution, otherwise safe.
func WarningLevelFor(percent float64) domain.WarningLevel {
	switch {
	case percent >= 90:
		return domain.WarningDanger
	case percent >= 70:
		return domain.WarningCaution
	default:
		return domain.WarningSafe
	}
}

// InclusiveDayCount counts the days spanned by two calendar dates with both
// endpoints included: a same-day trip is 1 day. The absolute value makes the
// count independent of argument order, and the ceiling absorbs a time-of-day
// component on either endpoint (relevant when one endpoint is "now").
func InclusiveDayCount(a, b time.Time) int {
	return inclusiveDayCount(a, b)
}

func inclusiveDayCount(a, b time.Time) int {
	days := math.Abs(b.Sub(a).Hours() / 24)
	return int(math.Ceil(days)) + 1
}

// percentOfCeiling returns days as a percentage of MaxDaysAllowed, capped
// at 100. Not rounded: boundary classification (69.999 vs 70) must survive.
func percentOfCeiling(days int) float64 {
	return math.Min(100, float64(days)/MaxDaysAllowed*100)
}
