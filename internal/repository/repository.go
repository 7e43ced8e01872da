package repository

import (
	"context"

	"github.com/akutuh/bloglist-api/internal/model"
)

// BlogRepository is the storage interface for blog posts.
//
// List and GetByID resolve the owning user into the display-safe Owner
// projection (username only) — the storage layer owns the join so no
// caller ever touches the raw user_id reference.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id string) (*model.Blog, error)
	List(ctx context.Context) ([]model.Blog, error)
	UpdateLikes(ctx context.Context, id string, likes int) (*model.Blog, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository is the storage interface for user accounts.
// List resolves each user's owned blogs; GetByUsername is the login lookup.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
