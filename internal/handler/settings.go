package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/nkoval/greencard-days/backend/internal/domain"
)

// GetSettings handles GET /settings.
// The green-card date is null until the user sets one.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	date, err := s.settings.GetGreenCardDate(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	var resp settingsResponse
	if date != nil {
		resp.GreenCardDate = &openapi_types.Date{Time: *date}
	}
	writeJSON(w, http.StatusOK, resp)
}

// PutGreenCardDate handles PUT /settings/green-card-date.
// Setting a new date overwrites the previous one; there is no way to clear it.
func (s *Server) PutGreenCardDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var body greenCardDateRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.GreenCardDate == nil {
		badRequest(w, "green_card_date is required")
		return
	}

	if err := s.settings.SetGreenCardDate(r.Context(), userID, body.GreenCardDate.Time); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{GreenCardDate: body.GreenCardDate})
}
