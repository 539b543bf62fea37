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

// WorkEventCreator defines the interface for recording work events.
type WorkEventCreator interface {
	CreateWorkEvent(ctx context.Context, data models.WorkEventCreate) (*models.WorkEventDB, error)
}

// WorkEventGetter defines the interface for reading a single work event.
type WorkEventGetter interface {
	GetWorkEvent(ctx context.Context, id int64) (*models.WorkEventDB, error)
}

// WorkEventLister defines the interface for listing the events of a work.
type WorkEventLister interface {
	ListWorkEvents(ctx context.Context, workID int64) ([]models.WorkEventDB, error)
}

// WorkEventUpdater defines the interface for partially updating a work event.
type WorkEventUpdater interface {
	UpdateWorkEvent(ctx context.Context, id int64, upd models.WorkEventUpdate) (*models.WorkEventDB, error)
}

// WorkEventDeleter defines the interface for deleting a work event.
type WorkEventDeleter interface {
	DeleteWorkEvent(ctx context.Context, id int64) error
}

// WorkEventCreateRequest represents the JSON body for recording a work event
// swagger:model WorkEventCreateRequest
type WorkEventCreateRequest struct {
	// Owning work id
	// required: true
	// default: 1
	WorkID int64 `json:"work_id" validate:"required,gt=0"`

	// Date the work was performed
	// required: true
	WorkDate time.Time `json:"work_date" validate:"required"`

	// Odometer value at time of service
	// default: 0
	Mileage int64 `json:"mileage" validate:"gte=0"`

	// Parts cost
	PartPrice float64 `json:"part_price" validate:"gte=0"`

	// Labor cost
	WorkPrice float64 `json:"work_price" validate:"gte=0"`

	// Free-text note
	Note string `json:"note"`
}

// WorkEventUpdateRequest represents the JSON body for a partial work-event update
// swagger:model WorkEventUpdateRequest
type WorkEventUpdateRequest struct {
	// Date the work was performed
	WorkDate *time.Time `json:"work_date"`

	// Odometer value at time of service
	Mileage *int64 `json:"mileage" validate:"omitempty,gte=0"`

	// Parts cost
	PartPrice *float64 `json:"part_price" validate:"omitempty,gte=0"`

	// Labor cost
	WorkPrice *float64 `json:"work_price" validate:"omitempty,gte=0"`

	// Free-text note
	Note *string `json:"note"`
}

// NewWorkEventCreateHandler returns an HTTP handler recording a work
// event. The event's mileage ratchets the vehicle odometer upward.
// @Summary Record work event
// @Description Records a maintenance occurrence. If the reported mileage exceeds the vehicle's, the vehicle mileage is raised.
// @Tags work-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workEventCreateRequest body handlers.WorkEventCreateRequest true "Work event creation request"
// @Success 201 {object} models.WorkEventDB "Event recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Work not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /work-events [post]
func NewWorkEventCreateHandler(svc WorkEventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WorkEventCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		event, err := svc.CreateWorkEvent(r.Context(), models.WorkEventCreate{
			WorkID:    req.WorkID,
			WorkDate:  req.WorkDate,
			Mileage:   req.Mileage,
			PartPrice: req.PartPrice,
			WorkPrice: req.WorkPrice,
			Note:      req.Note,
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
		writeJSON(w, http.StatusCreated, event)
	}
}

// NewWorkEventGetHandler returns an HTTP handler reading one work event by id.
// @Summary Get work event
// @Tags work-events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work event ID"
// @Success 200 {object} models.WorkEventDB "Work event"
// @Failure 404 {object} handlers.ErrorResponse "Work event not found"
// @Router /work-events/{id} [get]
func NewWorkEventGetHandler(svc WorkEventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work event not found")
			return
		}

		event, err := svc.GetWorkEvent(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkEventNotFound):
				writeError(w, http.StatusNotFound, "Work event not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewWorkEventsListHandler returns an HTTP handler listing the events
// of a work, newest first.
// @Summary List a work's events
// @Tags work-events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Success 200 {array} models.WorkEventDB "Events newest first"
// @Failure 404 {object} handlers.ErrorResponse "Work not found"
// @Router /works/{id}/events [get]
func NewWorkEventsListHandler(svc WorkEventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work not found")
			return
		}

		events, err := svc.ListWorkEvents(r.Context(), workID)
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
		writeJSON(w, http.StatusOK, events)
	}
}

// NewWorkEventUpdateHandler returns an HTTP handler for partial
// work-event updates. The mileage ratchet is not re-applied.
// @Summary Update work event
// @Tags work-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work event ID"
// @Param workEventUpdateRequest body handlers.WorkEventUpdateRequest true "Fields to update"
// @Success 200 {object} models.WorkEventDB "Updated event"
// @Failure 404 {object} handlers.ErrorResponse "Work event not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /work-events/{id} [patch]
func NewWorkEventUpdateHandler(svc WorkEventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work event not found")
			return
		}

		var req WorkEventUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		event, err := svc.UpdateWorkEvent(r.Context(), id, models.WorkEventUpdate{
			WorkDate:  req.WorkDate,
			Mileage:   req.Mileage,
			PartPrice: req.PartPrice,
			WorkPrice: req.WorkPrice,
			Note:      req.Note,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkEventNotFound):
				writeError(w, http.StatusNotFound, "Work event not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewWorkEventDeleteHandler returns an HTTP handler deleting a work event.
// @Summary Delete work event
// @Tags work-events
// @Security BearerAuth
// @Param id path int true "Work event ID"
// @Success 204 "Event deleted"
// @Failure 404 {object} handlers.ErrorResponse "Work event not found"
// @Router /work-events/{id} [delete]
func NewWorkEventDeleteHandler(svc WorkEventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Work event not found")
			return
		}

		err = svc.DeleteWorkEvent(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkEventNotFound):
				writeError(w, http.StatusNotFound, "Work event not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
