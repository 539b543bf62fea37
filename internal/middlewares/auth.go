package middlewares

import (
	"context"
	"net/http"

	"github.com/drivelog/drivelog-api/internal/jwt"
	"github.com/drivelog/drivelog-api/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ParseAccess(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsContextKey is an unexported type for keys in context
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// ClaimsFromContext retrieves the verified token claims stored by
// AuthMiddleware. Returns nil if the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// ContextWithClaims stores verified claims in the context the way
// AuthMiddleware does.
func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// AuthMiddleware returns a middleware that requires a valid access
// token in the Authorization header. Refresh tokens presented here are
// rejected like any other invalid token. Verified claims are stored in
// the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.ParseAccess(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}
