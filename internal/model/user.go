package model

import "time"

// User represents a registered account.
//
// WHY PasswordHash WITH json:"-"?
// The bcrypt hash is storage-only. The `json:"-"` tag makes encoding/json
// skip the field entirely, so no handler can accidentally serialize it —
// the omission is enforced at the type level, not by per-handler care.
//
// Blogs is populated only by queries that resolve the user's posts
// (GET /api/users); everywhere else it stays nil and is omitted from JSON.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Blogs        []Blog    `json:"blogs,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
