// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the database
//
// Services accept primitives and plain structs, never *http.Request, and
// return domain errors from internal/apperror, never HTTP status codes.
// The handler translates both directions. Each service receives repository
// interfaces, not the concrete sqlite.DB — tests inject in-memory mocks.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/model"
	"github.com/akutuh/bloglist-api/internal/repository"
)

// BlogService handles business logic for blog posts.
type BlogService struct {
	blogs  repository.BlogRepository
	logger *slog.Logger
}

// NewBlogService creates a BlogService. The caller decides which
// repository implementation to inject (SQLite in production, a mock in
// tests).
func NewBlogService(blogs repository.BlogRepository, logger *slog.Logger) *BlogService {
	return &BlogService{
		blogs:  blogs,
		logger: logger,
	}
}

// BlogDraft is the caller-supplied shape of a new blog.
//
// Likes is a pointer so "likes omitted" and "likes: 0" are
// distinguishable; an absent value is normalized to 0 on creation. A blog
// never leaves this layer with an undefined like count.
type BlogDraft struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// List returns all blogs with their owners' usernames resolved.
func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing blogs: %w", err)
	}
	return blogs, nil
}

// GetByID returns one blog with its owner resolved.
// Returns apperror.ErrNotFound if the blog doesn't exist.
func (s *BlogService) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "blog ID is required")
	}

	return s.blogs.GetByID(ctx, id)
}

// Create validates and saves a new blog owned by ownerID.
//
// Title and url are required and must be non-empty after trimming;
// creation fails with a validation error and persists nothing otherwise.
// A missing likes value becomes 0.
func (s *BlogService) Create(ctx context.Context, ownerID string, draft BlogDraft) (*model.Blog, error) {
	if ownerID == "" {
		return nil, apperror.Unauthorized("valid authentication required")
	}

	title := strings.TrimSpace(draft.Title)
	url := strings.TrimSpace(draft.URL)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title must be defined")
	}
	if url == "" {
		return nil, apperror.ValidationFailed("url", "url must be defined")
	}

	likes := 0
	if draft.Likes != nil {
		likes = *draft.Likes
	}

	blog := &model.Blog{
		Title:  title,
		Author: strings.TrimSpace(draft.Author),
		URL:    url,
		Likes:  likes,
		UserID: ownerID,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		s.logger.Error("failed to create blog",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating blog: %w", err)
	}

	s.logger.Info("blog created",
		slog.String("id", blog.ID),
		slog.String("title", blog.Title),
		slog.String("ownerID", ownerID),
	)

	// Re-read so the response carries the owner's username like every
	// other blog payload.
	return s.blogs.GetByID(ctx, blog.ID)
}

// UpdateLikes sets the likes count on the identified blog and returns the
// updated record. Only likes changes — title, author, and url are
// untouched regardless of what else the caller sent.
//
// Whether this operation requires authentication is a routing decision
// (see config.Config.OpenLikes); the service itself applies no ownership
// rule because likes are a shared counter, not owner-private state.
func (s *BlogService) UpdateLikes(ctx context.Context, id string, likes int) (*model.Blog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "blog ID is required")
	}

	blog, err := s.blogs.UpdateLikes(ctx, id, likes)
	if err != nil {
		return nil, err
	}

	s.logger.Info("blog likes updated",
		slog.String("id", blog.ID),
		slog.Int("likes", blog.Likes),
	)

	return blog, nil
}

// Delete removes a blog if callerID owns it.
//
// Returns apperror.ErrNotFound if the blog doesn't exist and
// apperror.ErrForbidden if the caller is not the owner — the handler maps
// these to distinct status codes (404 vs 403).
func (s *BlogService) Delete(ctx context.Context, callerID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "blog ID is required")
	}
	if callerID == "" {
		return apperror.Unauthorized("valid authentication required")
	}

	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.UserID != callerID {
		return apperror.Forbidden("you are not allowed to delete this blog")
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("blog deleted",
		slog.String("id", id),
		slog.String("ownerID", callerID),
	)
	return nil
}
