// Package middleware holds the HTTP middleware wrapped around dashboard routes.
package middleware

import (
	"context"
	"net/http"

	"github.com/lildude/athletedash/internal/sessions"
)

type contextKey string

const userIDKey contextKey = "user_id"

// RequireAuthentication is a middleware that checks if the user is
// authenticated and stores their id in the request context.
func RequireAuthentication(store *sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.GetSession(r)
			if err != nil {
				http.Error(w, "Failed to get session", http.StatusInternalServerError)
				return
			}

			// Check if user is authenticated
			auth, ok := session.Values[sessions.KeyAuthenticated].(bool)
			userID, _ := session.Values[sessions.KeyUserID].(string)
			if !ok || !auth || userID == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user's id, or "" outside RequireAuthentication.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
