package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/drivelog/drivelog-api/internal/jwt"
	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/services"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// NewRefreshHandler returns an HTTP handler that exchanges the refresh
// cookie for a new access token.
// @Summary Refresh access token
// @Description Reads the refresh token from the HTTP-only cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenResponse "New access token returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing, invalid or expired refresh token"
// @Failure 403 {object} handlers.ErrorResponse "Account is inactive"
// @Router /auth/jwt/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(jwt.RefreshCookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Missing refresh token")
			return
		}

		accessToken, err := svc.Refresh(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired),
				errors.Is(err, jwt.ErrTokenInvalid),
				errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "Account is inactive")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: accessToken,
			TokenType:   "bearer",
		})
	}
}
