package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom returns the identity attached by Middleware, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Middleware rejects requests without a valid bearer token: 401 when no
// Authorization header is present, 403 when the token does not verify.
// On success the decoded identity rides on the request context.
func Middleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "unauthorized access", http.StatusUnauthorized)
				return
			}
			parts := strings.Fields(header)
			if len(parts) < 2 {
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}
			id, err := tokens.Verify(parts[1])
			if err != nil {
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RoleStore looks up the stored role for an email.
type RoleStore interface {
	Role(ctx context.Context, email string) (string, error)
}

const RoleAdmin = "admin"

// RequireAdmin gates a route on the caller's stored role. It must run after
// Middleware. A missing user record counts as forbidden, not as a fault.
func RequireAdmin(users RoleStore, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}
			role, err := users.Role(r.Context(), id.Email)
			if err != nil {
				log.Debug().Err(err).Str("email", id.Email).Msg("role lookup failed")
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}
			if role != RoleAdmin {
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
