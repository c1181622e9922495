package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/internal/repo"
)

// SettingsService implements business logic for per-user settings.
type SettingsService struct {
	repo repo.SettingsRepo
}

// NewSettingsService constructs a SettingsService backed by the provided repo.
func NewSettingsService(r repo.SettingsRepo) *SettingsService {
	return &SettingsService{repo: r}
}

// GetGreenCardDate returns the user's green-card date, or nil when unset.
func (s *SettingsService) GetGreenCardDate(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	d, err := s.repo.GetGreenCardDate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.SettingsService.GetGreenCardDate: %w", err)
	}
	return d, nil
}

// SetGreenCardDate stores the user's green-card date, overwriting any
// previous value. There is intentionally no way to clear it again.
// Returns domain.ErrValidation if the date is missing.
func (s *SettingsService) SetGreenCardDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: green_card_date is required", domain.ErrValidation)
	}
	if err := s.repo.SetGreenCardDate(ctx, userID, date); err != nil {
		return fmt.Errorf("service.SettingsService.SetGreenCardDate: %w", err)
	}
	return nil
}
