package handler

import (
	"errors"
	"net/http"

	"github.com/nkoval/greencard-days/backend/internal/domain"
)

// Register handles POST /auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	user, err := s.users.Register(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userToResponse(user))
}

// Login handles POST /auth/login.
// Unknown email and wrong password produce the same 401, so the endpoint
// cannot be used to probe which emails have accounts.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	token, user, err := s.users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: userToResponse(user)})
}
