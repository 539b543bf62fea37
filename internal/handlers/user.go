package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
)

// UserLister defines the interface for listing users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserGetter defines the interface for reading a single user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserUpdater defines the interface for partially updating a user.
type UserUpdater interface {
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
}

// UserDeleter defines the interface for deleting a user.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// UserUpdateRequest represents the JSON body for a partial user update.
// Absent fields are left untouched; provided fields overwrite, empty
// strings included.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Username
	Username *string `json:"username" validate:"omitempty,min=3,max=150"`

	// First name
	FirstName *string `json:"first_name"`

	// Last name
	LastName *string `json:"last_name"`

	// Email
	Email *string `json:"email" validate:"omitempty,email"`

	// Active flag
	IsActive *bool `json:"is_active"`
}

// NewUserListHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserDB "Users ordered by id"
// @Router /users [get]
func NewUserListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewUserGetHandler returns an HTTP handler reading one user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDB "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewUserGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUserUpdateHandler returns an HTTP handler for partial user updates.
// @Summary Update user
// @Description Applies a partial update. An empty body is a no-op returning the unchanged user.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to update"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /users/{id} [patch]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		user, err := svc.Update(r.Context(), id, models.UserUpdate{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			IsActive:  req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUserDeleteHandler returns an HTTP handler deleting a user and, by
// cascade, everything the user owns.
// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewUserDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		err = svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
