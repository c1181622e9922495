package handler

import (
	"errors"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/nkoval/greencard-days/backend/internal/domain"
)

// tripRequest is the body for POST /trips and PUT /trips/{id}.
// Dates are plain "2006-01-02" strings on the wire; openapi_types.Date
// handles the (un)marshalling.
type tripRequest struct {
	Destination   string              `json:"destination"`
	DepartureDate *openapi_types.Date `json:"departure_date"`
	ReturnDate    *openapi_types.Date `json:"return_date"`
	Notes         *string             `json:"notes"`
}

// tripResponse is the wire representation of a trip.
type tripResponse struct {
	ID            int64              `json:"id"`
	Destination   string             `json:"destination"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	ReturnDate    openapi_types.Date `json:"return_date"`
	Days          int                `json:"days"`
	Notes         *string            `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// requestToTrip converts a tripRequest into a domain.Trip.
// Returns an error if required fields are missing; field-level business rules
// (return before departure, blank destination) are the service's job.
func requestToTrip(body tripRequest) (domain.Trip, error) {
	if body.DepartureDate == nil {
		return domain.Trip{}, errors.New("departure_date is required")
	}
	if body.ReturnDate == nil {
		return domain.Trip{}, errors.New("return_date is required")
	}
	t := domain.Trip{
		Destination:   body.Destination,
		DepartureDate: body.DepartureDate.Time,
		ReturnDate:    body.ReturnDate.Time,
	}
	if body.Notes != nil {
		t.Notes = *body.Notes
	}
	return t, nil
}

// tripToResponse converts a domain.Trip into its wire representation,
// including the inclusive day count shown in trip lists.
func tripToResponse(t domain.Trip, days int) tripResponse {
	resp := tripResponse{
		ID:            t.ID,
		Destination:   t.Destination,
		DepartureDate: openapi_types.Date{Time: t.DepartureDate},
		ReturnDate:    openapi_types.Date{Time: t.ReturnDate},
		Days:          days,
		CreatedAt:     t.CreatedAt,
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	return resp
}

// credentialsRequest is the body for POST /auth/register and POST /auth/login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the wire representation of an account, without the hash.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// authResponse is returned by POST /auth/login.
type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func userToResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email, CreatedAt: u.CreatedAt}
}

// settingsResponse is the wire representation of per-user settings.
type settingsResponse struct {
	GreenCardDate *openapi_types.Date `json:"green_card_date"`
}

// greenCardDateRequest is the body for PUT /settings/green-card-date.
type greenCardDateRequest struct {
	GreenCardDate *openapi_types.Date `json:"green_card_date"`
}

// statsResponse is the wire representation of the eligibility snapshot.
// It embeds the calculator's output and adds the period boundary dates,
// which the domain type keeps as time.Time values.
type statsResponse struct {
	domain.Stats

	PeriodStart     openapi_types.Date  `json:"period_start"`
	GreenCardDate   *openapi_types.Date `json:"green_card_date"`
	EligibilityDate *openapi_types.Date `json:"eligibility_date"`
}

func statsToResponse(s domain.Stats) statsResponse {
	resp := statsResponse{
		Stats:       s,
		PeriodStart: openapi_types.Date{Time: s.PeriodStart},
	}
	if s.GreenCardDate != nil {
		resp.GreenCardDate = &openapi_types.Date{Time: *s.GreenCardDate}
	}
	if s.EligibilityDate != nil {
		resp.EligibilityDate = &openapi_types.Date{Time: *s.EligibilityDate}
	}
	return resp
}
