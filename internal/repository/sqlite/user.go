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

// compile-time check that *UserStore implements repository.UserRepository
var _ repository.UserRepository = (*UserStore)(nil)

// UserStore persists user accounts.
type UserStore struct {
	conn *sql.DB
}

const userColumns = `id, username, name, password_hash, created_at, updated_at`

// Create inserts a new user. ID and timestamps are filled in here.
//
// The username UNIQUE constraint is the last line of defence — the service
// checks uniqueness first to produce the proper validation message, and
// the constraint catches the race where two signups pass that check
// concurrently. That rare loser surfaces as a wrapped storage error.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO users (id, username, name, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}

	return nil
}

// GetByID retrieves a user by internal ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.getUserWhere(ctx, "id = ?", id)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}
	return u, nil
}

// GetByUsername retrieves a user by username — the login lookup.
// Returns apperror.ErrNotFound if no user has that username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.getUserWhere(ctx, "username = ?", username)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("user", username)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user by username %q: %w", username, err)
	}
	return u, nil
}

func (s *UserStore) getUserWhere(ctx context.Context, where string, arg any) (*model.User, error) {
	var u model.User
	err := s.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where,
		arg,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users, each with the blogs they own attached.
//
// Two queries instead of one joined query: the users and their blogs are
// fetched separately and grouped in Go. With a join we'd be de-duplicating
// user rows by hand; this way each piece stays a straight scan.
func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	index := map[string]int{} // user ID → position in users
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Name, &u.PasswordHash,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		index[u.ID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating users: %w", err)
	}

	blogRows, err := s.conn.QueryContext(ctx,
		`SELECT id, title, author, url, likes, user_id, created_at, updated_at
		 FROM blogs ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing blogs for users: %w", err)
	}
	defer blogRows.Close()

	for blogRows.Next() {
		var b model.Blog
		if err := blogRows.Scan(
			&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning blog row: %w", err)
		}
		if i, ok := index[b.UserID]; ok {
			users[i].Blogs = append(users[i].Blogs, b)
		}
	}
	if err := blogRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating blogs for users: %w", err)
	}

	return users, nil
}
