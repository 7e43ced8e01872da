package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// contextKey is an unexported type used for context keys in this package.
//
// WHY A CUSTOM TYPE FOR CONTEXT KEYS?
// context.WithValue uses any as the key type. With a plain string key like
// "userID", ANY package that knows the string can read or shadow the
// value. A package-private type prevents collisions: only this package can
// create a contextKey, so only this package controls the userID slot.
type contextKey string

const userIDKey contextKey = "userID"

var errNoBearer = errors.New("auth: missing bearer token")

// RequireAuth is a middleware that enforces authentication on protected
// routes.
//
// It reads the JWT from the `Authorization: Bearer <token>` header,
// validates it, and stores the userID in the request context. If the
// header is missing, malformed, or the token fails validation, it returns
// 401 Unauthorized and stops the request chain.
//
// MIDDLEWARE PATTERN IN GO:
// A middleware takes an http.Handler and returns a new http.Handler that
// wraps it. Chi applies them in a chain:
// req → M1 → M2 → Handler → M2 → M1 → resp
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := extractUserID(r, tokens)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized","message":"valid authentication required"}`))
				return
			}

			// Store userID in context so handlers can read it
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth extracts the user identity if a valid bearer token is
// present, but does NOT block the request if it's missing or invalid.
//
// Used for routes that are public by configuration (the likes update when
// OPEN_LIKES is on): anonymous callers pass through, authenticated callers
// still get their identity attached for logging.
func OptionalAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, err := extractUserID(r, tokens); err == nil && userID != "" {
				ctx := context.WithValue(r.Context(), userIDKey, userID)
				r = r.WithContext(ctx)
			}
			// Always continue — no 401 even if no token
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext retrieves the authenticated user's ID from the request
// context.
//
// Returns ("", false) if the request is anonymous (no valid token).
// Returns (id, true) if the user is authenticated.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// extractUserID reads the Authorization header and validates the bearer
// token. Shared by RequireAuth and OptionalAuth.
//
// Accepted form: `Authorization: Bearer <jwt>`. The scheme comparison is
// case-insensitive per RFC 7235; a blank token after the scheme is treated
// the same as a missing header.
func extractUserID(r *http.Request, tokens *TokenService) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errNoBearer
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errNoBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errNoBearer
	}

	return tokens.Validate(token)
}
