package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/auth"
	"github.com/akutuh/bloglist-api/internal/model"
	"github.com/akutuh/bloglist-api/internal/repository"
)

// MinCredentialLength applies to both username and password at signup.
const MinCredentialLength = 3

// Signup validation messages.
//
// These exact strings — typos included — are the wire contract with the
// existing client. Do not "fix" atleat/atleast.
const (
	MsgUsernameRequired = "username must be defined"
	MsgPasswordRequired = "password must be defined"
	MsgUsernameTooShort = "username must be atleat 3 characters long"
	MsgPasswordTooShort = "password must be atleast 3 characters long"
	MsgUsernameTaken    = "username must be unique"
)

// UserService handles account signup and user listing.
type UserService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Signup validates credentials, hashes the password, and persists the
// user. The raw password never reaches the repository or the logs.
//
// Validation order matches the messages' contract: presence, then length,
// then uniqueness. Name is an optional display string and is not
// validated.
func (s *UserService) Signup(ctx context.Context, username, name, password string) (*model.User, error) {
	if username == "" {
		return nil, apperror.ValidationFailed("username", MsgUsernameRequired)
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", MsgPasswordRequired)
	}
	if len(username) < MinCredentialLength {
		return nil, apperror.ValidationFailed("username", MsgUsernameTooShort)
	}
	if len(password) < MinCredentialLength {
		return nil, apperror.ValidationFailed("password", MsgPasswordTooShort)
	}

	// Uniqueness check. The UNIQUE constraint in the store still backs
	// this up if two signups for the same name race past it.
	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, apperror.ValidationFailed("username", MsgUsernameTaken)
	case !errors.Is(err, apperror.ErrNotFound):
		s.logger.Error("failed to check username uniqueness",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// List returns all users with their owned blogs attached. The password
// hash rides along internally but is never serialized (json:"-").
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
