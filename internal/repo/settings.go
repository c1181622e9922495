package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SettingsRepo defines persistence for per-user settings. The only setting
// today is the green-card date: absent until set, overwritable afterwards.
// No operation clears it; the upsert always writes a concrete date.
type SettingsRepo interface {
	// GetGreenCardDate returns the user's green-card date, or nil when the
	// user has never set one. A missing settings row is not an error.
	GetGreenCardDate(ctx context.Context, userID uuid.UUID) (*time.Time, error)

	// SetGreenCardDate upserts the user's green-card date.
	SetGreenCardDate(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// pgSettingsRepo is the Postgres implementation of SettingsRepo.
type pgSettingsRepo struct {
	db db
}

// NewSettingsRepo constructs a SettingsRepo backed by the provided db connection.
func NewSettingsRepo(db db) SettingsRepo {
	return &pgSettingsRepo{db: db}
}

// GetGreenCardDate returns the stored green-card date or nil when unset.
func (r *pgSettingsRepo) GetGreenCardDate(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	const q = `SELECT green_card_date FROM user_settings WHERE user_id = @user_id`

	var d pgtype.Date
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}).Scan(&d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no settings row yet — same as unset
		}
		return nil, fmt.Errorf("repo.SettingsRepo.GetGreenCardDate: %w", err)
	}
	if !d.Valid {
		return nil, nil
	}
	t := d.Time
	return &t, nil
}

// SetGreenCardDate inserts or overwrites the user's green-card date.
func (r *pgSettingsRepo) SetGreenCardDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	const q = `
		INSERT INTO user_settings (user_id, green_card_date)
		VALUES (@user_id, @green_card_date)
		ON CONFLICT (user_id)
		DO UPDATE SET green_card_date = EXCLUDED.green_card_date, updated_at = now()`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "green_card_date": date})
	if err != nil {
		return fmt.Errorf("repo.SettingsRepo.SetGreenCardDate: %w", err)
	}
	return nil
}
