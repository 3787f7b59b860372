package middleware

import (
	"context"
	"net/http"

	"github.com/scrng/scoreboard-web/internal/model"
	"github.com/scrng/scoreboard-web/internal/session"
)

type contextKey string

const userContextKey contextKey = "user"

// GetUser retrieves the authenticated user from the request context
// Returns nil if no user is authenticated
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// RequireUser returns middleware that requires an authenticated session.
// Unauthenticated visitors are redirected to the login page before any
// handler runs, so no upstream fetch is ever issued for them.
func RequireUser(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := sessions.Read(r)
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalUser returns middleware that reads the session without requiring
// one. Sets the user in context if authenticated, nil otherwise.
func OptionalUser(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), userContextKey, sessions.Read(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
