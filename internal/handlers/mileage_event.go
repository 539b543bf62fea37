package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
)

// MileageEventCreator defines the interface for recording mileage events.
type MileageEventCreator interface {
	CreateMileageEvent(ctx context.Context, data models.MileageEventCreate) (*models.MileageEventDB, error)
}

// MileageEventGetter defines the interface for reading a single mileage event.
type MileageEventGetter interface {
	GetMileageEvent(ctx context.Context, id int64) (*models.MileageEventDB, error)
}

// MileageEventLister defines the interface for listing the readings of a vehicle.
type MileageEventLister interface {
	ListMileageEvents(ctx context.Context, vehicleID int64) ([]models.MileageEventDB, error)
}

// MileageEventUpdater defines the interface for partially updating a mileage event.
type MileageEventUpdater interface {
	UpdateMileageEvent(ctx context.Context, id int64, upd models.MileageEventUpdate) (*models.MileageEventDB, error)
}

// MileageEventDeleter defines the interface for deleting a mileage event.
type MileageEventDeleter interface {
	DeleteMileageEvent(ctx context.Context, id int64) error
}

// MileageEventCreateRequest represents the JSON body for recording an odometer reading
// swagger:model MileageEventCreateRequest
type MileageEventCreateRequest struct {
	// Owning vehicle id
	// required: true
	// default: 1
	VehicleID int64 `json:"vehicle_id" validate:"required,gt=0"`

	// Date of the reading
	// required: true
	MileageDate time.Time `json:"mileage_date" validate:"required"`

	// Odometer value
	// default: 0
	Mileage int64 `json:"mileage" validate:"gte=0"`
}

// MileageEventUpdateRequest represents the JSON body for a partial mileage-event update
// swagger:model MileageEventUpdateRequest
type MileageEventUpdateRequest struct {
	// Date of the reading
	MileageDate *time.Time `json:"mileage_date"`

	// Odometer value
	Mileage *int64 `json:"mileage" validate:"omitempty,gte=0"`
}

// NewMileageEventCreateHandler returns an HTTP handler recording an
// odometer reading. The reading ratchets the vehicle mileage upward.
// @Summary Record mileage event
// @Description Records a standalone odometer reading. If it exceeds the vehicle's mileage, the vehicle mileage is raised.
// @Tags mileage-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mileageEventCreateRequest body handlers.MileageEventCreateRequest true "Mileage event creation request"
// @Success 201 {object} models.MileageEventDB "Reading recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /mileage-events [post]
func NewMileageEventCreateHandler(svc MileageEventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MileageEventCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		event, err := svc.CreateMileageEvent(r.Context(), models.MileageEventCreate{
			VehicleID:   req.VehicleID,
			MileageDate: req.MileageDate,
			Mileage:     req.Mileage,
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
		writeJSON(w, http.StatusCreated, event)
	}
}

// NewMileageEventGetHandler returns an HTTP handler reading one mileage event by id.
// @Summary Get mileage event
// @Tags mileage-events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mileage event ID"
// @Success 200 {object} models.MileageEventDB "Mileage event"
// @Failure 404 {object} handlers.ErrorResponse "Mileage event not found"
// @Router /mileage-events/{id} [get]
func NewMileageEventGetHandler(svc MileageEventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Mileage event not found")
			return
		}

		event, err := svc.GetMileageEvent(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMileageEventNotFound):
				writeError(w, http.StatusNotFound, "Mileage event not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewVehicleMileageEventsHandler returns an HTTP handler listing the
// readings of a vehicle, newest first.
// @Summary List a vehicle's mileage events
// @Tags mileage-events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {array} models.MileageEventDB "Readings newest first"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /vehicles/{id}/mileage-events [get]
func NewVehicleMileageEventsHandler(svc MileageEventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}

		events, err := svc.ListMileageEvents(r.Context(), vehicleID)
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
		writeJSON(w, http.StatusOK, events)
	}
}

// NewMileageEventUpdateHandler returns an HTTP handler for partial
// mileage-event updates. The ratchet is not re-applied.
// @Summary Update mileage event
// @Tags mileage-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mileage event ID"
// @Param mileageEventUpdateRequest body handlers.MileageEventUpdateRequest true "Fields to update"
// @Success 200 {object} models.MileageEventDB "Updated event"
// @Failure 404 {object} handlers.ErrorResponse "Mileage event not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /mileage-events/{id} [patch]
func NewMileageEventUpdateHandler(svc MileageEventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Mileage event not found")
			return
		}

		var req MileageEventUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		event, err := svc.UpdateMileageEvent(r.Context(), id, models.MileageEventUpdate{
			MileageDate: req.MileageDate,
			Mileage:     req.Mileage,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMileageEventNotFound):
				writeError(w, http.StatusNotFound, "Mileage event not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewMileageEventDeleteHandler returns an HTTP handler deleting a mileage event.
// @Summary Delete mileage event
// @Tags mileage-events
// @Security BearerAuth
// @Param id path int true "Mileage event ID"
// @Success 204 "Event deleted"
// @Failure 404 {object} handlers.ErrorResponse "Mileage event not found"
// @Router /mileage-events/{id} [delete]
func NewMileageEventDeleteHandler(svc MileageEventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Mileage event not found")
			return
		}

		err = svc.DeleteMileageEvent(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMileageEventNotFound):
				writeError(w, http.StatusNotFound, "Mileage event not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
