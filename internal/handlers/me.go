package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/middlewares"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
)

// CurrentUserGetter defines the interface that the me-endpoint service must implement.
type CurrentUserGetter interface {
	CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler for the authenticated user's own profile.
// @Summary Current user
// @Description Returns the profile of the user behind the access token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid access token"
// @Failure 403 {object} handlers.ErrorResponse "Account is inactive"
// @Router /auth/jwt/users/me [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "Account is inactive")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
