package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/auth"
	"github.com/akutuh/bloglist-api/internal/service"
)

// BlogHandler translates HTTP requests into BlogService calls.
//
// It owns only HTTP concerns: decoding JSON bodies, reading path
// parameters and the authenticated identity from the request context, and
// choosing status codes via writeJSON/writeError. All rules (validation,
// ownership) live in the service.
type BlogHandler struct {
	blogs  *service.BlogService
	logger *slog.Logger
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(blogs *service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{blogs: blogs, logger: logger}
}

// createBlogRequest is the POST body. Likes is *int so an omitted field is
// distinguishable from an explicit 0 — the service normalizes nil to 0.
type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// updateLikesRequest is the PUT body. Only likes is read; any other field
// the caller sends is ignored.
type updateLikesRequest struct {
	Likes int `json:"likes"`
}

// HandleList returns all blogs with owner usernames attached.
//
// HTTP: GET /api/blogs → 200
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// HandleGetByID returns a single blog.
//
// HTTP: GET /api/blogs/{id} → 200, or 404 if no blog has that id.
func (h *BlogHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// HandleCreate saves a new blog owned by the authenticated user.
//
// HTTP: POST /api/blogs → 201 + created blog
// Auth: required (RequireAuth middleware sets userID in context)
// Errors: 400 on missing title/url, 401 without a valid token.
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Shouldn't happen behind RequireAuth, but be safe.
		writeError(w, apperror.Unauthorized("valid authentication required"))
		return
	}

	var req createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid blog JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	blog, err := h.blogs.Create(r.Context(), userID, service.BlogDraft{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, blog)
}

// HandleUpdateLikes updates only the likes count of a blog.
//
// HTTP: PUT /api/blogs/{id} → 200 + updated blog, or 404.
// Auth: decided at routing time (config.Config.OpenLikes) — the handler
// itself accepts anonymous callers.
func (h *BlogHandler) HandleUpdateLikes(w http.ResponseWriter, r *http.Request) {
	var req updateLikesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid likes JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	blog, err := h.blogs.UpdateLikes(r.Context(), r.PathValue("id"), req.Likes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// HandleDelete removes a blog owned by the caller.
//
// HTTP: DELETE /api/blogs/{id} → 204 No Content
// Auth: required.
// Errors: 404 if the blog doesn't exist, 403 if the caller isn't the
// owner — deliberately distinct codes, not the legacy shared 400.
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("valid authentication required"))
		return
	}

	if err := h.blogs.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
