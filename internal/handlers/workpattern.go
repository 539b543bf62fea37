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

// WorkPatternLister defines the interface for listing work patterns.
type WorkPatternLister interface {
	List(ctx context.Context) ([]models.WorkPatternDB, error)
}

// WorkPatternGetter defines the interface for reading a single pattern.
type WorkPatternGetter interface {
	GetByID(ctx context.Context, id int64) (*models.WorkPatternDB, error)
}

// WorkPatternCreator defines the interface for creating patterns.
type WorkPatternCreator interface {
	Create(ctx context.Context, data models.WorkPatternCreate) (*models.WorkPatternDB, error)
}

// WorkPatternUpdater defines the interface for partially updating a pattern.
type WorkPatternUpdater interface {
	Update(ctx context.Context, id int64, upd models.WorkPatternUpdate) (*models.WorkPatternDB, error)
}

// WorkPatternDeleter defines the interface for deleting a pattern.
type WorkPatternDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// WorkPatternCreateRequest represents the JSON body for pattern creation
// swagger:model WorkPatternCreateRequest
type WorkPatternCreateRequest struct {
	// Maintenance type name
	// required: true
	// default: Oil change
	Title string `json:"title" validate:"required"`

	// Recurrence interval in months
	// default: 12
	IntervalMonth int `json:"interval_month" validate:"gte=0"`

	// Recurrence interval in kilometers
	// default: 10000
	IntervalKM int `json:"interval_km" validate:"gte=0"`
}

// WorkPatternUpdateRequest represents the JSON body for a partial pattern update
// swagger:model WorkPatternUpdateRequest
type WorkPatternUpdateRequest struct {
	// Maintenance type name
	Title *string `json:"title"`

	// Recurrence interval in months
	IntervalMonth *int `json:"interval_month" validate:"omitempty,gte=0"`

	// Recurrence interval in kilometers
	IntervalKM *int `json:"interval_km" validate:"omitempty,gte=0"`
}

// NewWorkPatternListHandler returns an HTTP handler listing the pattern library.
// @Summary List work patterns
// @Tags workpatterns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.WorkPatternDB "Patterns ordered by id"
// @Router /workpatterns [get]
func NewWorkPatternListHandler(svc WorkPatternLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patterns, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, patterns)
	}
}

// NewWorkPatternGetHandler returns an HTTP handler reading one pattern by id.
// @Summary Get work pattern
// @Tags workpatterns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pattern ID"
// @Success 200 {object} models.WorkPatternDB "Pattern"
// @Failure 404 {object} handlers.ErrorResponse "Pattern not found"
// @Router /workpatterns/{id} [get]
func NewWorkPatternGetHandler(svc WorkPatternGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Pattern not found")
			return
		}

		pattern, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkPatternNotFound):
				writeError(w, http.StatusNotFound, "Pattern not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, pattern)
	}
}

// NewWorkPatternCreateHandler returns an HTTP handler adding a pattern
// to the library. Existing vehicles are unaffected; only future
// registrations seed from it.
// @Summary Create work pattern
// @Tags workpatterns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workPatternCreateRequest body handlers.WorkPatternCreateRequest true "Pattern creation request"
// @Success 201 {object} models.WorkPatternDB "Pattern created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /workpatterns [post]
func NewWorkPatternCreateHandler(svc WorkPatternCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WorkPatternCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		pattern, err := svc.Create(r.Context(), models.WorkPatternCreate{
			Title:         req.Title,
			IntervalMonth: req.IntervalMonth,
			IntervalKM:    req.IntervalKM,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, pattern)
	}
}

// NewWorkPatternUpdateHandler returns an HTTP handler for partial pattern updates.
// @Summary Update work pattern
// @Tags workpatterns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pattern ID"
// @Param workPatternUpdateRequest body handlers.WorkPatternUpdateRequest true "Fields to update"
// @Success 200 {object} models.WorkPatternDB "Updated pattern"
// @Failure 404 {object} handlers.ErrorResponse "Pattern not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /workpatterns/{id} [patch]
func NewWorkPatternUpdateHandler(svc WorkPatternUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Pattern not found")
			return
		}

		var req WorkPatternUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		pattern, err := svc.Update(r.Context(), id, models.WorkPatternUpdate{
			Title:         req.Title,
			IntervalMonth: req.IntervalMonth,
			IntervalKM:    req.IntervalKM,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkPatternNotFound):
				writeError(w, http.StatusNotFound, "Pattern not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, pattern)
	}
}

// NewWorkPatternDeleteHandler returns an HTTP handler removing a pattern
// from the library. Works seeded from it survive.
// @Summary Delete work pattern
// @Tags workpatterns
// @Security BearerAuth
// @Param id path int true "Pattern ID"
// @Success 204 "Pattern deleted"
// @Failure 404 {object} handlers.ErrorResponse "Pattern not found"
// @Router /workpatterns/{id} [delete]
func NewWorkPatternDeleteHandler(svc WorkPatternDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Pattern not found")
			return
		}

		err = svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkPatternNotFound):
				writeError(w, http.StatusNotFound, "Pattern not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
