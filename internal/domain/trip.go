// Package domain contains the core data types for the green-card days tracker.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, eligibility).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single absence from the United States.
// Departure and return are calendar dates with no time-of-day component;
// both endpoints count as days outside. A trip always belongs to exactly
// one user.
type Trip struct {
	ID            int64     `json:"id"` // assigned by the store (bigserial)
	UserID        uuid.UUID `json:"-"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"` // >= DepartureDate
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
