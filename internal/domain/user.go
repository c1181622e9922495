package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns trips and settings.
// PasswordHash is a bcrypt hash; the plaintext password never leaves the
// service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Settings holds the per-user preferences that feed the eligibility
// calculation. GreenCardDate is nil until the user sets it; once set it can
// be overwritten but the public API exposes no way to clear it.
type Settings struct {
	UserID        uuid.UUID
	GreenCardDate *time.Time
	UpdatedAt     time.Time
}
