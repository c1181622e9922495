package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/internal/eligibility"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var body tripRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}
	trip, err := requestToTrip(body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	trip.UserID = userID

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created, tripDays(created)))
}

// ListTrips handles GET /trips. Returns the user's trips, newest departure
// first, each with its inclusive day count.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	trips, err := s.trips.ListByUser(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t, tripDays(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	id, err := tripID(r)
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip, tripDays(trip)))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	id, err := tripID(r)
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	var body tripRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}
	trip, err := requestToTrip(body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	trip.ID = id
	trip.UserID = userID

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated, tripDays(updated)))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	id, err := tripID(r)
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// tripID parses the {id} path parameter.
func tripID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// tripDays is the inclusive day count shown alongside every trip.
func tripDays(t domain.Trip) int {
	return eligibility.InclusiveDayCount(t.DepartureDate, t.ReturnDate)
}
