package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/service"
)

// UserHandler serves signup and user listing.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type signupRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// HandleSignup creates a new account.
//
// HTTP: POST /api/users → 201 + created user (password hash never
// serialized), or 400 with one of the signup validation messages.
//
// The raw password exists only in the decoded request struct; it is handed
// to the service for hashing and never logged.
func (h *UserHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid signup JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	user, err := h.users.Signup(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleList returns all users with the blogs they own.
//
// HTTP: GET /api/users → 200
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
