// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Blog represents a single blog post.
//
// The `json:"..."` tags tell Go's encoding/json package how to serialize
// this struct to/from JSON. UserID is the owning user's internal ID and is
// never exposed directly — responses carry the Owner projection instead.
//
// WHY Likes int (not *int)?
// A blog always has a defined like count. The HTTP layer uses a separate
// request struct with *int to distinguish "likes omitted" from "likes: 0";
// by the time a Blog exists, absence has been normalized to 0.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	UserID    string    `json:"-"`
	Owner     *Owner    `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Owner is the display-safe projection of a blog's owning user.
//
// Listing endpoints resolve the user_id reference into this shape so that
// clients see who wrote a post without us ever leaking the full user record
// (and certainly not the password hash).
type Owner struct {
	Username string `json:"username"`
}
