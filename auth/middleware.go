package auth

import (
	"context"
	"net/http"
)

// ContextKey is the type for context keys set by this package.
type ContextKey string

// UserIDKey is the context key holding the authenticated user's id.
const UserIDKey ContextKey = "userID"

// Identity is soft authentication middleware: when a request carries a
// valid session cookie, the user id is attached to the request context.
// Requests without a cookie (or with an invalid one) pass through
// unchanged, since every endpoint of this API is public.
func Identity(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(tokenCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := service.ValidateToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the user id attached by Identity. The
// second return value reports whether the request was authenticated.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
