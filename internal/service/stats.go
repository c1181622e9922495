package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/internal/eligibility"
	"github.com/nkoval/greencard-days/backend/internal/repo"
)

// StatsService assembles the eligibility snapshot: it reads the trip set and
// green-card date and hands them to the calculator. Nothing is cached — every
// call recomputes from the current store contents.
type StatsService struct {
	trips    repo.TripRepo
	settings repo.SettingsRepo
	clock    func() time.Time
}

// NewStatsService constructs a StatsService. Pass nil for clock to use
// time.Now; tests inject a fixed clock for deterministic snapshots.
func NewStatsService(trips repo.TripRepo, settings repo.SettingsRepo, clock func() time.Time) *StatsService {
	if clock == nil {
		clock = time.Now
	}
	return &StatsService{trips: trips, settings: settings, clock: clock}
}

// Snapshot computes the user's eligibility statistics as of the current
// moment. The trips and green-card date are read once each, so the
// calculator always sees a consistent snapshot.
func (s *StatsService) Snapshot(ctx context.Context, userID uuid.UUID) (domain.Stats, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Snapshot: %w", err)
	}
	greenCardDate, err := s.settings.GetGreenCardDate(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Snapshot: %w", err)
	}
	return eligibility.Compute(s.clock(), greenCardDate, trips), nil
}
