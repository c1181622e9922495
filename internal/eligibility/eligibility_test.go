package eligibility_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/internal/eligibility"
)

// ---- helpers ---------------------------------------------------------------

// date builds a calendar date at midnight UTC, the form all trip dates take.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func trip(dep, ret time.Time) domain.Trip {
	return domain.Trip{Destination: "Lisbon", DepartureDate: dep, ReturnDate: ret}
}

// ---- inclusive day count ---------------------------------------------------

func TestInclusiveDayCount_SameDay(t *testing.T) {
	d := date(2024, 3, 15)
	assert.Equal(t, 1, eligibility.InclusiveDayCount(d, d))
}

func TestInclusiveDayCount_CountsBothEndpoints(t *testing.T) {
	// Feb 5 - Jan 20 = 16 days difference; inclusive count is 17.
	got := eligibility.InclusiveDayCount(date(2024, 1, 20), date(2024, 2, 5))
	assert.Equal(t, 17, got)
}

func TestInclusiveDayCount_OrderIndependent(t *testing.T) {
	a, b := date(2024, 1, 20), date(2024, 2, 5)
	assert.Equal(t,
		eligibility.InclusiveDayCount(a, b),
		eligibility.InclusiveDayCount(b, a))
}

func TestInclusiveDayCount_AtLeastOne(t *testing.T) {
	pairs := [][2]time.Time{
		{date(2024, 1, 1), date(2024, 1, 1)},
		{date(2024, 1, 1), date(2024, 1, 2)},
		{date(2023, 12, 31), date(2024, 1, 1)}, // across year boundary
		{date(2024, 2, 28), date(2024, 3, 1)},  // across leap day
	}
	for _, p := range pairs {
		assert.GreaterOrEqual(t, eligibility.InclusiveDayCount(p[0], p[1]), 1)
	}
}

func TestInclusiveDayCount_CeilsTimeOfDay(t *testing.T) {
	// A half-day remainder rounds up before the +1: midnight Jan 1 to noon
	// Jan 2 is 1.5 days -> ceil 2 -> 3 inclusive.
	a := date(2024, 1, 1)
	b := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, eligibility.InclusiveDayCount(a, b))
}

// ---- warning levels --------------------------------------------------------

func TestWarningLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    domain.WarningLevel
	}{
		{0, domain.WarningSafe},
		{69.999, domain.WarningSafe},
		{70, domain.WarningCaution},
		{89.999, domain.WarningCaution},
		{90, domain.WarningDanger},
		{100, domain.WarningDanger},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, eligibility.WarningLevelFor(tc.percent), "percent=%v", tc.percent)
	}
}

// ---- period start & eligibility date ---------------------------------------

// Scenario: green-card date set, no trips. The period anchors on the
// green-card date and the eligibility date is five calendar years later.
func TestCompute_GreenCardDate_NoTrips(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)

	stats := eligibility.Compute(now, &gc, nil)

	assert.Equal(t, 0, stats.TotalDaysOutside)
	assert.Equal(t, 913, stats.DaysRemaining)
	assert.Equal(t, domain.WarningSafe, stats.WarningLevel)
	assert.True(t, stats.PeriodStart.Equal(gc), "period start should be the green-card date")
	require.NotNil(t, stats.EligibilityDate)
	assert.True(t, stats.EligibilityDate.Equal(date(2028, 8, 13)),
		"eligibility date should be green-card date + 5 calendar years, got %v", stats.EligibilityDate)
	require.NotNil(t, stats.DaysUntilEligible)
	// 2025-01-01T00:00 to 2028-08-13T00:00 is exactly 1320 days.
	assert.Equal(t, 1320, *stats.DaysUntilEligible)
}

func TestCompute_DaysUntilEligible_SubDayRoundsUp(t *testing.T) {
	gc := date(2023, 8, 13)
	now := time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC) // 1320.5 days out

	stats := eligibility.Compute(now, &gc, nil)

	require.NotNil(t, stats.DaysUntilEligible)
	assert.Equal(t, 1321, *stats.DaysUntilEligible)
}

func TestCompute_DaysUntilEligible_FlooredAtZero(t *testing.T) {
	gc := date(2018, 1, 1) // eligibility date long past
	now := date(2025, 1, 1)

	stats := eligibility.Compute(now, &gc, nil)

	require.NotNil(t, stats.DaysUntilEligible)
	assert.Equal(t, 0, *stats.DaysUntilEligible)
}

// Scenario: no green-card date. The period is a fixed 1825-day lookback
// (5x365, not calendar-aware) and there is no eligibility countdown.
func TestCompute_NoGreenCardDate_RollingWindow(t *testing.T) {
	now := date(2025, 1, 1)

	stats := eligibility.Compute(now, nil, nil)

	// 1825 days before 2025-01-01 is 2020-01-03 (two leap years in between).
	assert.True(t, stats.PeriodStart.Equal(date(2020, 1, 3)),
		"period start should be now - 1825d, got %v", stats.PeriodStart)
	assert.Nil(t, stats.EligibilityDate)
	assert.Nil(t, stats.DaysUntilEligible)
	assert.Nil(t, stats.GreenCardDate)
}

// ---- trip classification ---------------------------------------------------

// Scenario: one fully-past trip inside the period contributes its inclusive
// day count.
func TestCompute_PastTrip_FullyInsidePeriod(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{trip(date(2024, 1, 20), date(2024, 2, 5))}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, 17, stats.TotalDaysOutside)
	assert.Equal(t, 1, stats.PastTripCount)
	assert.Equal(t, 0, stats.PlannedTripCount)
	assert.Equal(t, 1, stats.TripCount)
	assert.Equal(t, 17, stats.LongestTrip)
}

// Scenario: a trip departing strictly after now is planned — counted in the
// planned totals at full length and excluded from realized totals.
func TestCompute_PlannedTrip(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{trip(date(2025, 3, 1), date(2025, 3, 10))}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, 0, stats.TotalDaysOutside)
	assert.Equal(t, 0, stats.PastTripCount)
	assert.Equal(t, 10, stats.PlannedDaysOutside)
	assert.Equal(t, 1, stats.PlannedTripCount)
	assert.Equal(t, 10, stats.ProjectedTotalDays)
}

// Scenario: a trip straddling the period start is clipped to the window, but
// the longest-trip figure keeps the full unclipped length.
func TestCompute_TripSpanningPeriodStart_Clipped(t *testing.T) {
	now := date(2025, 1, 1) // period start 2020-01-03
	trips := []domain.Trip{trip(date(2019, 12, 20), date(2020, 1, 10))}

	stats := eligibility.Compute(now, nil, trips)

	// Only 2020-01-03 .. 2020-01-10 counts: 8 days.
	assert.Equal(t, 8, stats.TotalDaysOutside)
	// Full length Dec 20 .. Jan 10 is 22 days.
	assert.Equal(t, 22, stats.LongestTrip)
	assert.Equal(t, 1, stats.PastTripCount)
}

// An in-progress trip (departed, not yet returned) is clipped at now.
func TestCompute_InProgressTrip_ClippedAtNow(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{trip(date(2024, 12, 25), date(2025, 1, 10))}

	stats := eligibility.Compute(now, &gc, trips)

	// Dec 25 .. Jan 1 inclusive: 8 days realized so far.
	assert.Equal(t, 8, stats.TotalDaysOutside)
	assert.Equal(t, 1, stats.PastTripCount)
	// Longest trip reflects the full planned length, 17 days.
	assert.Equal(t, 17, stats.LongestTrip)
}

// A trip that ended before the period start is excluded from every total
// except the raw trip count.
func TestCompute_TripBeforePeriod_Excluded(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{trip(date(2022, 1, 1), date(2022, 2, 1))}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, 0, stats.TotalDaysOutside)
	assert.Equal(t, 0, stats.PastTripCount)
	assert.Equal(t, 0, stats.LongestTrip)
	assert.Equal(t, 1, stats.TripCount)
}

// A departure date of today (midnight) is not strictly after now, so the trip
// counts as in-progress rather than planned.
func TestCompute_DepartureToday_IsPast(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{trip(date(2025, 1, 1), date(2025, 1, 15))}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, 1, stats.PastTripCount)
	assert.Equal(t, 0, stats.PlannedTripCount)
	// Clipped to [departure, now]: a single day.
	assert.Equal(t, 1, stats.TotalDaysOutside)
}

// ---- aggregates ------------------------------------------------------------

func TestCompute_ProjectedIsTotalPlusPlanned(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{
		trip(date(2024, 1, 20), date(2024, 2, 5)),  // past, 17 days
		trip(date(2025, 3, 1), date(2025, 3, 10)),  // planned, 10 days
		trip(date(2025, 6, 1), date(2025, 6, 30)),  // planned, 30 days
	}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, 17, stats.TotalDaysOutside)
	assert.Equal(t, 40, stats.PlannedDaysOutside)
	assert.Equal(t, stats.TotalDaysOutside+stats.PlannedDaysOutside, stats.ProjectedTotalDays)
	assert.Equal(t, 913-17, stats.DaysRemaining)
	assert.Equal(t, 913-57, stats.ProjectedDaysRemaining)
	assert.Equal(t, 3, stats.TripCount)
}

// Scenario: exactly at the ceiling — zero days remaining, 100% used, danger.
func TestCompute_ExactlyAtCeiling(t *testing.T) {
	gc := date(2020, 6, 1)
	now := date(2025, 1, 1)
	// 2021-01-01 .. 2023-07-02 is 912 days difference -> 913 inclusive.
	trips := []domain.Trip{trip(date(2021, 1, 1), date(2023, 7, 2))}

	stats := eligibility.Compute(now, &gc, trips)

	require.Equal(t, 913, stats.TotalDaysOutside)
	assert.Equal(t, 0, stats.DaysRemaining)
	assert.Equal(t, float64(100), stats.PercentUsed)
	assert.Equal(t, domain.WarningDanger, stats.WarningLevel)
}

func TestCompute_PercentClampedAt100(t *testing.T) {
	gc := date(2018, 1, 1)
	now := date(2025, 1, 1)
	trips := []domain.Trip{
		trip(date(2019, 1, 1), date(2021, 1, 1)),
		trip(date(2022, 1, 1), date(2024, 1, 1)),
	}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Greater(t, stats.TotalDaysOutside, 913)
	assert.Equal(t, float64(100), stats.PercentUsed)
	assert.Equal(t, 0, stats.DaysRemaining, "days remaining is floored at zero")
}

// A planned trip longer than a year still drives the longest-trip figure and
// the informational over-limit flag.
func TestCompute_LongestTrip_PlannedOverLimit(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	// 2025-02-01 .. 2026-03-10 is 402 days difference -> 403 inclusive.
	trips := []domain.Trip{trip(date(2025, 2, 1), date(2026, 3, 10))}

	stats := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, 403, stats.LongestTrip)
	assert.True(t, stats.LongestTripOverLimit)
	assert.Equal(t, 403, stats.PlannedDaysOutside)
	assert.Equal(t, 0, stats.TotalDaysOutside)
}

// ---- purity ----------------------------------------------------------------

func TestCompute_Deterministic(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{
		trip(date(2024, 1, 20), date(2024, 2, 5)),
		trip(date(2025, 3, 1), date(2025, 3, 10)),
	}

	first := eligibility.Compute(now, &gc, trips)
	second := eligibility.Compute(now, &gc, trips)

	assert.Equal(t, first, second)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	trips := []domain.Trip{trip(date(2024, 1, 20), date(2024, 2, 5))}
	original := make([]domain.Trip, len(trips))
	copy(original, trips)

	_ = eligibility.Compute(now, &gc, trips)

	assert.Equal(t, original, trips)
	assert.True(t, gc.Equal(date(2023, 8, 13)))
}

// Order of the trip slice must not affect the result.
func TestCompute_OrderIrrelevant(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)
	a := trip(date(2024, 1, 20), date(2024, 2, 5))
	b := trip(date(2025, 3, 1), date(2025, 3, 10))
	c := trip(date(2022, 1, 1), date(2022, 2, 1))

	forward := eligibility.Compute(now, &gc, []domain.Trip{a, b, c})
	backward := eligibility.Compute(now, &gc, []domain.Trip{c, b, a})

	assert.Equal(t, forward, backward)
}

func TestCompute_GreenCardDatePassthrough(t *testing.T) {
	gc := date(2023, 8, 13)
	now := date(2025, 1, 1)

	stats := eligibility.Compute(now, &gc, nil)

	require.NotNil(t, stats.GreenCardDate)
	assert.True(t, stats.GreenCardDate.Equal(gc))
}
