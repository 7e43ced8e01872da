package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/akutuh/bloglist-api/internal/apperror"
	"github.com/akutuh/bloglist-api/internal/model"
	"github.com/akutuh/bloglist-api/internal/repository"
)

// Compile-time check that *BlogStore implements repository.BlogRepository.
// `var _ X = (*Y)(nil)` fails to compile if a method is missing, so an
// interface drift is caught here instead of at some distant call site.
var _ repository.BlogRepository = (*BlogStore)(nil)

// BlogStore persists blog posts. Created by New; shares the pool with
// UserStore.
type BlogStore struct {
	conn *sql.DB
}

// blogColumns is the SELECT list shared by every blog query that resolves
// the owner. u.username comes from the join and feeds the Owner projection.
const blogColumns = `
	b.id, b.title, b.author, b.url, b.likes, b.user_id,
	b.created_at, b.updated_at, u.username`

// Create inserts a new blog.
//
// The caller's struct is mutated: ID (xid — 20 chars, URL-safe, sortable
// by creation time) and timestamps are filled in here. Ownership is the
// user_id column on this row, so the whole creation is one INSERT — the
// owner's blog collection needs no second write.
func (s *BlogStore) Create(ctx context.Context, blog *model.Blog) error {
	blog.ID = xid.New().String()

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO blogs (id, title, author, url, likes, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating blog: %w", err)
	}

	return nil
}

// GetByID retrieves a single blog with its owner's username resolved.
// Returns apperror.ErrNotFound if no blog has that id.
func (s *BlogStore) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT`+blogColumns+`
		 FROM blogs b
		 LEFT JOIN users u ON u.id = b.user_id
		 WHERE b.id = ?`,
		id,
	)

	blog, err := scanBlog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("blog", id)
		}
		return nil, fmt.Errorf("sqlite: getting blog %s: %w", id, err)
	}

	return blog, nil
}

// List returns all blogs, oldest first, each with its owner's username
// resolved. No pagination — the API exposes the full collection.
func (s *BlogStore) List(ctx context.Context) ([]model.Blog, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT`+blogColumns+`
		 FROM blogs b
		 LEFT JOIN users u ON u.id = b.user_id
		 ORDER BY b.created_at, b.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing blogs: %w", err)
	}
	// rows holds a pool connection — leaking it eventually hangs the app.
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning blog row: %w", err)
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating blogs: %w", err)
	}

	return blogs, nil
}

// UpdateLikes sets only the likes column on the identified blog and
// returns the updated record with its owner resolved.
// Returns apperror.ErrNotFound if no blog has that id.
func (s *BlogStore) UpdateLikes(ctx context.Context, id string, likes int) (*model.Blog, error) {
	result, err := s.conn.ExecContext(ctx,
		`UPDATE blogs SET likes = ?, updated_at = ? WHERE id = ?`,
		likes,
		time.Now(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating likes on blog %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperror.NotFound("blog", id)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a blog by its ID.
// Returns apperror.ErrNotFound if no blog has that id — ownership is the
// service layer's concern, the repository only knows rows.
func (s *BlogStore) Delete(ctx context.Context, id string) error {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM blogs WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting blog %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("blog", id)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows so scanBlog can serve single-
// and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}

// scanBlog reads one row from the blogColumns SELECT list into a Blog,
// folding the joined username into the Owner projection. The username is
// nullable through the LEFT JOIN; a missing owner just leaves Owner nil.
func scanBlog(s scanner) (*model.Blog, error) {
	var b model.Blog
	var username sql.NullString

	if err := s.Scan(
		&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID,
		&b.CreatedAt, &b.UpdatedAt, &username,
	); err != nil {
		return nil, err
	}

	if username.Valid {
		b.Owner = &model.Owner{Username: username.String}
	}
	return &b, nil
}
