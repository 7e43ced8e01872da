package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/auth"
	"github.com/akutuh/bloglist-api/internal/model"
	"github.com/akutuh/bloglist-api/internal/repository"
)

// mockUserRepo implements repository.UserRepository in memory.
// Shared with auth_test.go (same package).
type mockUserRepo struct {
	users  map[string]*model.User // by ID
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	result := *u
	return &result, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

// testPasswords uses the bcrypt minimum cost so each test doesn't pay
// ~250ms per hash.
func testPasswords() *auth.PasswordService {
	return auth.NewPasswordService(bcrypt.MinCost)
}

func newTestUserService(t *testing.T) (*UserService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	return NewUserService(repo, testPasswords(), testLogger()), repo
}

// =========================================================================
// SIGNUP TESTS
// =========================================================================

func TestSignup_Success(t *testing.T) {
	svc, repo := newTestUserService(t)

	user, err := svc.Signup(context.Background(), "root", "Superuser", "sekret")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if user.ID == "" {
		t.Error("expected user to have an ID")
	}
	if user.Username != "root" {
		t.Errorf("Username = %q, want %q", user.Username, "root")
	}
	if user.PasswordHash == "" || user.PasswordHash == "sekret" {
		t.Error("PasswordHash must be set and must not equal the raw password")
	}
	if len(repo.users) != 1 {
		t.Errorf("user count = %d, want 1", len(repo.users))
	}
}

func TestSignup_HashVerifies(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Signup(context.Background(), "mluukkai", "", "salainen")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if err := testPasswords().Verify(user.PasswordHash, "salainen"); err != nil {
		t.Errorf("stored hash does not verify against the original password: %v", err)
	}
}

// The exact message strings are the wire contract — typos included.
func TestSignup_ValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{"missing username", "", "sekret", "username must be defined"},
		{"missing password", "root", "", "password must be defined"},
		{"short username", "ab", "sekret", "username must be atleat 3 characters long"},
		{"short password", "root", "ab", "password must be atleast 3 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUserService(t)

			_, err := svc.Signup(context.Background(), tt.username, "", tt.password)
			if err == nil {
				t.Fatal("Signup() should fail")
			}
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}

			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error %v is not an *AppError", err)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMsg)
			}
			if len(repo.users) != 0 {
				t.Errorf("user count = %d, want 0", len(repo.users))
			}
		})
	}
}

func TestSignup_MinimumLengthAccepted(t *testing.T) {
	svc, _ := newTestUserService(t)

	// Exactly 3 characters each is valid
	if _, err := svc.Signup(context.Background(), "abc", "", "xyz"); err != nil {
		t.Errorf("Signup() error = %v for 3-char credentials, want nil", err)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc, repo := newTestUserService(t)

	if _, err := svc.Signup(context.Background(), "root", "", "sekret"); err != nil {
		t.Fatalf("setup: Signup() error = %v", err)
	}

	_, err := svc.Signup(context.Background(), "root", "", "other-pass")
	if err == nil {
		t.Fatal("Signup() should fail for a duplicate username")
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error %v is not an *AppError", err)
	}
	if appErr.Message != "username must be unique" {
		t.Errorf("message = %q, want %q", appErr.Message, "username must be unique")
	}
	if len(repo.users) != 1 {
		t.Errorf("user count = %d, want 1 — duplicate signup must not add a user", len(repo.users))
	}
}

// =========================================================================
// LIST TESTS
// =========================================================================

func TestUserList(t *testing.T) {
	svc, _ := newTestUserService(t)

	for _, name := range []string{"alice", "bob"} {
		if _, err := svc.Signup(context.Background(), name, "", "sekret"); err != nil {
			t.Fatalf("setup: Signup(%q) error = %v", name, err)
		}
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len = %d, want 2", len(users))
	}
}
