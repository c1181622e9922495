package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nkoval/greencard-days/backend/internal/domain"
	"github.com/nkoval/greencard-days/backend/internal/repo"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

// TokenIssuer mints an auth token for a user ID. Defined here (in the
// consumer package) so UserService can be tested without the JWT machinery.
type TokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

// UserService implements account registration and login.
type UserService struct {
	users  repo.UserRepo
	tokens TokenIssuer
}

// NewUserService constructs a UserService backed by the provided repo and
// token issuer.
func NewUserService(users repo.UserRepo, tokens TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register validates the credentials, hashes the password with bcrypt, and
// creates the account. Returns domain.ErrValidation for bad input and
// domain.ErrEmailTaken when the email is already registered.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	return user, nil
}

// Login checks the credentials and returns a signed token plus the account.
// Unknown email and wrong password both return domain.ErrInvalidCredentials;
// callers must not be able to probe which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: sign token: %w", err)
	}
	return token, user, nil
}
