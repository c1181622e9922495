package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (or is owned by a different user).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, return date before departure).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrEmailTaken is returned when registering with an email that already has
// an account. Handlers should map this to HTTP 409 Conflict.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned on login when the email is unknown or the
// password does not match. Handlers should map this to HTTP 401 and must not
// distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")
