package domain

import "time"

// WarningLevel classifies how close total outside-days are to the legal ceiling.
type WarningLevel string

const (
	WarningSafe    WarningLevel = "safe"    // < 70% of the ceiling used
	WarningCaution WarningLevel = "caution" // >= 70%
	WarningDanger  WarningLevel = "danger"  // >= 90%
)

// Stats is the eligibility snapshot derived from the current trip set and
// green-card date. It is never persisted: every request recomputes it from
// scratch, so it is purely a function of (now, green-card date, trips).
//
// "Projected" fields fold planned future trips into the realized totals so
// the user can see where an itinerary would leave them.
type Stats struct {
	TotalDaysOutside   int `json:"total_days_outside"`
	PlannedDaysOutside int `json:"planned_days_outside"`
	ProjectedTotalDays int `json:"projected_total_days"`

	DaysRemaining          int `json:"days_remaining"`
	ProjectedDaysRemaining int `json:"projected_days_remaining"`

	PercentUsed          float64 `json:"percent_used"`
	ProjectedPercentUsed float64 `json:"projected_percent_used"`

	WarningLevel          WarningLevel `json:"warning_level"`
	ProjectedWarningLevel WarningLevel `json:"projected_warning_level"`

	// LongestTrip is the full, unclipped length in days of the longest trip
	// that touches the tracked period. The 365-day single-trip rule is
	// informational only, so LongestTripOverLimit never blocks anything.
	LongestTrip          int  `json:"longest_trip"`
	LongestTripOverLimit bool `json:"longest_trip_over_limit"`

	TripCount        int `json:"trip_count"` // all trips, even ones before the period
	PastTripCount    int `json:"past_trip_count"`
	PlannedTripCount int `json:"planned_trip_count"`

	PeriodStart     time.Time  `json:"-"`
	GreenCardDate   *time.Time `json:"-"`
	EligibilityDate *time.Time `json:"-"`

	// DaysUntilEligible counts down to EligibilityDate with sub-day precision
	// rounded up, floored at zero. Nil when no green-card date is set.
	DaysUntilEligible *int `json:"days_until_eligible"`
}
