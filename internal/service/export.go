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

// ExportService assembles a flat export of a user's trips, one row per trip,
// with the same inclusive day count the stats calculator uses.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per trip, ordered as the repo lists them
// (departure date descending). Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, domain.ExportRow{
			TripID:        t.ID,
			Destination:   t.Destination,
			DepartureDate: t.DepartureDate.Format("2006-01-02"),
			ReturnDate:    t.ReturnDate.Format("2006-01-02"),
			Days:          eligibility.InclusiveDayCount(t.DepartureDate, t.ReturnDate),
			Notes:         t.Notes,
			CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}
