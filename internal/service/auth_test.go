package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *UserService, *auth.TokenService) {
	t.Helper()

	repo := newMockUserRepo()
	passwords := testPasswords()
	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars!!", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	authSvc := NewAuthService(repo, tokens, passwords, testLogger())
	userSvc := NewUserService(repo, passwords, testLogger())
	return authSvc, userSvc, tokens
}

func TestLogin_Success(t *testing.T) {
	authSvc, userSvc, tokens := newTestAuthService(t)

	created, err := userSvc.Signup(context.Background(), "root", "Superuser", "sekret")
	if err != nil {
		t.Fatalf("setup: Signup() error = %v", err)
	}

	result, err := authSvc.Login(context.Background(), "root", "sekret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if result.Token == "" {
		t.Error("Login() returned empty token")
	}
	if result.Username != "root" {
		t.Errorf("Username = %q, want %q", result.Username, "root")
	}
	if result.Name != "Superuser" {
		t.Errorf("Name = %q, want %q", result.Name, "Superuser")
	}

	// The token must decode back to the user's internal ID
	userID, err := tokens.Validate(result.Token)
	if err != nil {
		t.Fatalf("Validate() on issued token error = %v", err)
	}
	if userID != created.ID {
		t.Errorf("token subject = %q, want %q", userID, created.ID)
	}
}

func TestLogin_UnknownUsername(t *testing.T) {
	authSvc, _, _ := newTestAuthService(t)

	_, err := authSvc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	authSvc, userSvc, _ := newTestAuthService(t)

	if _, err := userSvc.Signup(context.Background(), "root", "", "sekret"); err != nil {
		t.Fatalf("setup: Signup() error = %v", err)
	}

	_, err := authSvc.Login(context.Background(), "root", "wrong")
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

// Unknown-user and wrong-password failures must be indistinguishable, or
// the login endpoint becomes a username oracle.
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	authSvc, userSvc, _ := newTestAuthService(t)

	if _, err := userSvc.Signup(context.Background(), "root", "", "sekret"); err != nil {
		t.Fatalf("setup: Signup() error = %v", err)
	}

	_, errUnknown := authSvc.Login(context.Background(), "ghost", "sekret")
	_, errWrongPw := authSvc.Login(context.Background(), "root", "wrong")

	var appErr1, appErr2 *apperror.AppError
	if !errors.As(errUnknown, &appErr1) || !errors.As(errWrongPw, &appErr2) {
		t.Fatal("both failures should be *AppError")
	}
	if appErr1.Message != appErr2.Message {
		t.Errorf("messages differ: %q vs %q — username enumeration risk", appErr1.Message, appErr2.Message)
	}
}
