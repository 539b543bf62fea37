package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/drivelog/drivelog-api/internal/jwt"
	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents a successful authentication response
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT access token
	// default: ACCESS_TOKEN
	AccessToken string `json:"access_token"`

	// Token type
	// default: bearer
	TokenType string `json:"token_type"`
}

// NewLoginHandler returns an HTTP handler for user login. On success
// the refresh token is set as an HTTP-only cookie and the access token
// is returned in the body.
// @Summary User login
// @Description Authenticate user and return a JWT access token. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.TokenResponse "Access token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 403 {object} handlers.ErrorResponse "Account is inactive"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /auth/jwt/login [post]
func NewLoginHandler(svc Loginer, refreshTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		accessToken, refreshToken, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "Account is inactive")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.RefreshCookieName,
			Value:    refreshToken,
			Path:     "/",
			MaxAge:   int(refreshTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: accessToken,
			TokenType:   "bearer",
		})
	}
}
