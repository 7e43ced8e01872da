// Password hashing utilities.
//
// WHY BCRYPT?
// bcrypt is a password hashing function specifically designed to be slow —
// that slowness makes brute-force attacks expensive. It also generates a
// random salt per hash (two users with the same password get different
// hashes) and embeds the salt in the output, so no separate salt column is
// needed. NEVER store passwords in plain text or with fast hashes.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used in production.
// Cost 12 takes roughly ~250ms on a modern server — negligible for a
// login, brutal for an attacker iterating a wordlist.
const DefaultCost = 12

// PasswordService provides bcrypt hashing and verification.
//
// It's a struct (not free functions) so that the cost can be injected —
// tests use the bcrypt minimum (cost 4) to avoid the ~250ms overhead of
// cost 12 per hashing operation.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the given cost.
// Pass DefaultCost in production wiring; anything below the bcrypt minimum
// is raised to the default.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash hashes the given plaintext password with bcrypt.
//
// The output is a self-contained string (version, cost, salt, hash) that
// is stored directly in the database — Verify knows how to decode it.
//
// Returns an error if the plaintext is longer than 72 bytes: bcrypt
// silently truncates beyond that, and we'd rather reject than surprise.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify checks whether a plaintext password matches a stored bcrypt hash.
// Returns nil on a match. bcrypt compares in constant time internally, so
// this is safe against timing attacks.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
