package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/auth"
	"github.com/akutuh/bloglist-api/internal/repository"
)

// msgBadCredentials is deliberately the same for "unknown username" and
// "wrong password" — distinguishing them would let a caller enumerate
// which usernames exist.
const msgBadCredentials = "invalid username or password"

// AuthService handles login: credential verification and token issuance.
//
//	AuthHandler (HTTP) → AuthService (rules) → UserRepository (DB)
//	                   ↘ TokenService (JWT) + PasswordService (bcrypt)
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// LoginResult is what a successful login returns to the handler: the
// signed token plus the display fields the client shows for the session.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login verifies the supplied credentials and issues a signed token
// encoding the user's ID.
//
// Both failure modes — no such user, wrong password — return the same
// apperror.Unauthorized. bcrypt's comparison still runs at full cost on
// the wrong-password path, so response timing leaks little either way.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(msgBadCredentials)
		}
		return nil, fmt.Errorf("looking up user %q: %w", username, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		s.logger.Info("login rejected", slog.String("username", username))
		return nil, apperror.Unauthorized(msgBadCredentials)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token for user %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)

	return &LoginResult{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
