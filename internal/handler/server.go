// Package handler implements the HTTP handlers for the green-card days API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, stats.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/spec"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

// SettingsServicer defines the settings operations the handlers depend on.
type SettingsServicer interface {
	GetGreenCardDate(ctx context.Context, userID uuid.UUID) (*time.Time, error)
	SetGreenCardDate(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// StatsServicer computes the eligibility snapshot for a user.
type StatsServicer interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (domain.Stats, error)
}

// UserServicer defines the account operations the auth handlers depend on.
type UserServicer interface {
	Register(ctx context.Context, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
}

// ExportServicer produces the flat per-trip export rows.
type ExportServicer interface {
	Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the handlers' dependencies.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips    TripServicer
	settings SettingsServicer
	stats    StatsServicer
	users    UserServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, settings SettingsServicer, stats StatsServicer, users UserServicer, export ExportServicer) *Server {
	return &Server{
		trips:    trips,
		settings: settings,
		stats:    stats,
		users:    users,
		export:   export,
	}
}

// Routes mounts every endpoint on a fresh chi router. The caller supplies the
// auth middleware that protects everything except health, the spec, and the
// auth endpoints; tests pass a stub that injects a fixed user ID.
func (s *Server) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Post("/auth/register", s.Register)
	r.Post("/auth/login", s.Login)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Get("/trips/{id}", s.GetTrip)
		r.Put("/trips/{id}", s.UpdateTrip)
		r.Delete("/trips/{id}", s.DeleteTrip)

		r.Get("/settings", s.GetSettings)
		r.Put("/settings/green-card-date", s.PutGreenCardDate)

		r.Get("/stats", s.GetStats)
		r.Get("/export", s.GetExport)
	})

	return r
}
