// Package service contains the business logic for the green-card days API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// Validation here is the layer the eligibility calculator relies on: by the
// time trips reach the calculator, departure <= return always holds.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID, scoped to the owning user.
func (s *TripService) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns all of a user's trips ordered by departure date descending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByUser: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists changes to an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist for the owning user.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID, scoped to the owning user.
// Returns domain.ErrNotFound if the trip does not exist for that user.
func (s *TripService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Both dates must be present.
//   - ReturnDate must not be before DepartureDate. A same-day trip is valid.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departure_date is required", domain.ErrValidation)
	}
	if trip.ReturnDate.IsZero() {
		return fmt.Errorf("%w: return_date is required", domain.ErrValidation)
	}
	if trip.ReturnDate.Before(trip.DepartureDate) {
		return fmt.Errorf("%w: return_date must not be before departure_date", domain.ErrValidation)
	}
	return nil
}
