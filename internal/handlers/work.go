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

// WorkCreator defines the interface for adding works to a vehicle.
type WorkCreator interface {
	Create(ctx context.Context, data models.WorkCreate) (*models.WorkDB, error)
}

// WorkGetter defines the interface for reading a single work.
type WorkGetter interface {
	GetByID(ctx context.Context, id int64) (*models.WorkDB, error)
}

// WorkLister defines the interface for listing works of a vehicle.
type WorkLister interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.WorkDB, error)
}

// WorkUpdater defines the interface for partially updating a work.
type WorkUpdater interface {
	Update(ctx context.Context, id int64, upd models.WorkUpdate) (*models.WorkDB, error)
}

// WorkDeleter defines the interface for deleting a work.
type WorkDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// MileageIntervalCalculator defines the interface for the average
// mileage interval statistic of a work.
type MileageIntervalCalculator interface {
	AverageMileageInterval(ctx context.Context, workID int64) (int64, error)
}

// WorkCreateRequest represents the JSON body for adding a work
// swagger:model WorkCreateRequest
type WorkCreateRequest struct {
	// Owning vehicle id
	// required: true
	// default: 1
	VehicleID int64 `json:"vehicle_id" validate:"required,gt=0"`

	// Work title
	// required: true
	// default: Oil change
	Title string `json:"title" validate:"required"`

	// Recurrence interval in months
	// default: 12
	IntervalMonth int `json:"interval_month" validate:"gte=0"`

	// Recurrence interval in kilometers
	// default: 10000
	IntervalKM int `json:"interval_km" validate:"gte=0"`

	// Work type, defaults to MAINTENANCE
	// default: MAINTENANCE
	WorkType models.WorkType `json:"work_type" validate:"omitempty,oneof=MAINTENANCE REPAIR TUNING"`

	// Free-text note
	Note string `json:"note"`
}

// WorkUpdateRequest represents the JSON body for a partial work update
// swagger:model WorkUpdateRequest
type WorkUpdateRequest struct {
	// Work title
	Title *string `json:"title"`

	// Recurrence interval in months
	IntervalMonth *int `json:"interval_month" validate:"omitempty,gte=0"`

	// Recurrence interval in kilometers
	IntervalKM *int `json:"interval_km" validate:"omitempty,gte=0"`

	// Work type
	WorkType *models.WorkType `json:"work_type" validate:"omitempty,oneof=MAINTENANCE REPAIR TUNING"`

	// Free-text note
	Note *string `json:"note"`
}

// MileageIntervalResponse represents the average mileage interval of a work
// swagger:model MileageIntervalResponse
type MileageIntervalResponse struct {
	// Owning work id
	WorkID int64 `json:"work_id"`

	// Mean mileage distance between consecutive events, zero with fewer than two events
	AverageMileageInterval int64 `json:"average_mileage_interval"`
}

// NewWorkCreateHandler returns an HTTP handler adding a work to a vehicle.
// @Summary Create work
// @Tags works
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workCreateRequest body handlers.WorkCreateRequest true "Work creation request"
// @Success 201 {object} models.WorkDB "Work created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /works [post]
func NewWorkCreateHandler(svc WorkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WorkCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		work, err := svc.Create(r.Context(), models.WorkCreate{
			VehicleID:     req.VehicleID,
			Title:         req.Title,
			IntervalMonth: req.IntervalMonth,
			IntervalKM:    req.IntervalKM,
			WorkType:      req.WorkType,
			Note:          req.Note,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVehicleNotFound):
				writeError(w, http.StatusNotFound, "Vehicle not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, work)
	}
}

// NewWorkGetHandler returns an HTTP handler reading one work by id.
// @Summary Get work
// @Tags works
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Success 200 {object} models.WorkDB "Work"
// @Failure 404 {object} handlers.ErrorResponse "Work not found"
// @Router /works/{id} [get]
func NewWorkGetHandler(svc WorkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work not found")
			return
		}

		work, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkNotFound):
				writeError(w, http.StatusNotFound, "Work not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, work)
	}
}

// NewVehicleWorksHandler returns an HTTP handler listing the works of a vehicle.
// @Summary List a vehicle's works
// @Tags works
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {array} models.WorkDB "Works ordered by id"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /vehicles/{id}/works [get]
func NewVehicleWorksHandler(svc WorkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}

		works, err := svc.ListByVehicle(r.Context(), vehicleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVehicleNotFound):
				writeError(w, http.StatusNotFound, "Vehicle not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, works)
	}
}

// NewWorkUpdateHandler returns an HTTP handler for partial work updates.
// @Summary Update work
// @Tags works
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Param workUpdateRequest body handlers.WorkUpdateRequest true "Fields to update"
// @Success 200 {object} models.WorkDB "Updated work"
// @Failure 404 {object} handlers.ErrorResponse "Work not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /works/{id} [patch]
func NewWorkUpdateHandler(svc WorkUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work not found")
			return
		}

		var req WorkUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		work, err := svc.Update(r.Context(), id, models.WorkUpdate{
			Title:         req.Title,
			IntervalMonth: req.IntervalMonth,
			IntervalKM:    req.IntervalKM,
			WorkType:      req.WorkType,
			Note:          req.Note,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkNotFound):
				writeError(w, http.StatusNotFound, "Work not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, work)
	}
}

// NewWorkDeleteHandler returns an HTTP handler deleting a work and its events.
// @Summary Delete work
// @Tags works
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Success 204 "Work deleted"
// @Failure 404 {object} handlers.ErrorResponse "Work not found"
// @Router /works/{id} [delete]
func NewWorkDeleteHandler(svc WorkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work not found")
			return
		}

		err = svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkNotFound):
				writeError(w, http.StatusNotFound, "Work not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMileageIntervalHandler returns an HTTP handler for the average
// mileage interval between a work's events.
// @Summary Average mileage interval
// @Description Mean mileage distance between consecutive events of the work, in ascending mileage order.
// @Tags works
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Success 200 {object} handlers.MileageIntervalResponse "Average interval"
// @Failure 404 {object} handlers.ErrorResponse "Work not found"
// @Router /works/{id}/mileage-interval [get]
func NewMileageIntervalHandler(svc MileageIntervalCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work not found")
			return
		}

		interval, err := svc.AverageMileageInterval(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkNotFound):
				writeError(w, http.StatusNotFound, "Work not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, MileageIntervalResponse{
			WorkID:                 id,
			AverageMileageInterval: interval,
		})
	}
}
