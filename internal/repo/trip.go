// Package repo contains all database access logic for the green-card days API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nkoval/greencard-days/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, pgx.Tx,
// and pgxmock pools. Accepting this interface instead of *pgxpool.Pool
// directly lets integration tests pass a transaction that is rolled back
// after each test, and unit tests pass a mock.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips. Every operation is
// scoped to the owning user: a trip ID belonging to another user behaves
// exactly like a missing trip.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with the
	// store-assigned integer id and created_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by id, scoped to userID.
	// Returns domain.ErrNotFound if no such trip exists for that user.
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Trip, error)

	// ListByUser returns all of a user's trips ordered by departure_date
	// descending. Order is irrelevant to the stats calculation; the ordering
	// is for display.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if the trip does not
	// exist for trip.UserID.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by id, scoped to userID.
	// Returns domain.ErrNotFound if it does not exist for that user.
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation or a pgxmock pool.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, destination, departure_date, return_date, notes)
		VALUES (@user_id, @destination, @departure_date, @return_date, @notes)
		RETURNING id, user_id, destination, departure_date, return_date, notes, created_at`

	args := pgx.NamedArgs{
		"user_id":        trip.UserID,
		"destination":    trip.Destination,
		"departure_date": trip.DepartureDate,
		"return_date":    trip.ReturnDate,
		"notes":          trip.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key, scoped to the owning user.
func (r *pgTripRepo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Trip, error) {
	const q = `
		SELECT id, user_id, destination, departure_date, return_date, notes, created_at
		FROM trips
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns all trips for a user ordered by departure_date descending.
func (r *pgTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	const q = `
		SELECT id, user_id, destination, departure_date, return_date, notes, created_at
		FROM trips
		WHERE user_id = @user_id
		ORDER BY departure_date DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListByUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination    = @destination,
		    departure_date = @departure_date,
		    return_date    = @return_date,
		    notes          = @notes
		WHERE id = @id AND user_id = @user_id
		RETURNING id, user_id, destination, departure_date, return_date, notes, created_at`

	args := pgx.NamedArgs{
		"id":             trip.ID,
		"user_id":        trip.UserID,
		"destination":    trip.Destination,
		"departure_date": trip.DepartureDate,
		"return_date":    trip.ReturnDate,
		"notes":          trip.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key, scoped to the owning user.
func (r *pgTripRepo) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and date-column conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		userID pgtype.UUID
		dep    pgtype.Date
		ret    pgtype.Date
	)

	err := s.Scan(&t.ID, &userID, &t.Destination, &dep, &ret, &t.Notes, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.UserID = uuid.UUID(userID.Bytes)
	t.DepartureDate = dep.Time
	t.ReturnDate = ret.Time

	return t, nil
}
