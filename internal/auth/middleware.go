package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/practico-app/practico-lambda/internal/config"
)

type contextKey string

const userClaimsKey contextKey = "userClaims"

var ErrNoClaims = errors.New("no authenticated user in context")

// TokenFromRequest extracts the bearer token from the Authorization
// header, falling back to the jwt cookie set on login.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if strings.HasPrefix(strings.ToLower(h), "bearer ") {
			return strings.TrimSpace(h[len("Bearer "):])
		}
	}
	if c, err := r.Cookie("jwt"); err == nil {
		return c.Value
	}
	return ""
}

// WithUserClaims returns a context carrying the given claims.
func WithUserClaims(ctx context.Context, claims *UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*UserClaims, error) {
	claims, ok := ctx.Value(userClaimsKey).(*UserClaims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Rejected request with invalid token")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
	})
}

// OptionalAuthMiddleware attaches claims when a valid token is present
// and lets the request through either way. The test generator uses it:
// anonymous callers can generate, authenticated callers can also save.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := TokenFromRequest(r); token != "" {
			if claims, err := ValidateJWT(token); err == nil {
				r = r.WithContext(WithUserClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}
