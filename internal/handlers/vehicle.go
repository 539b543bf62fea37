package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/middlewares"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
	"github.com/drivelog/drivelog-api/internal/vin"
)

// VehicleCreator defines the interface for registering vehicles.
type VehicleCreator interface {
	Create(ctx context.Context, data models.VehicleCreate) (*models.VehicleDB, error)
}

// VehicleGetter defines the interface for reading single vehicles.
type VehicleGetter interface {
	GetByID(ctx context.Context, id int64) (*models.VehicleDB, error)
	GetByVIN(ctx context.Context, code string) (*models.VehicleDB, error)
}

// VehicleLister defines the interface for listing vehicles.
type VehicleLister interface {
	List(ctx context.Context) ([]models.VehicleDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.VehicleDB, error)
}

// VehicleUpdater defines the interface for partially updating a vehicle.
type VehicleUpdater interface {
	Update(ctx context.Context, id int64, upd models.VehicleUpdate) (*models.VehicleDB, error)
}

// VehicleDeleter defines the interface for deleting a vehicle.
type VehicleDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// VehicleCreateRequest represents the JSON body for vehicle registration
// swagger:model VehicleCreateRequest
type VehicleCreateRequest struct {
	// Vehicle identification number, 17 characters
	// required: true
	// default: JH4KA7532MC011642
	VIN string `json:"vin" validate:"required,len=17"`

	// Manufacturer
	// required: true
	// default: Honda
	Manufacturer string `json:"manufacturer" validate:"required"`

	// Model
	// required: true
	// default: Legend
	Model string `json:"model" validate:"required"`

	// Body style
	// default: sedan
	Body string `json:"body"`

	// Production year
	// required: true
	// default: 1991
	Year int `json:"year" validate:"required,gte=1886"`

	// Current odometer value
	// default: 0
	Mileage int64 `json:"mileage" validate:"gte=0"`
}

// VehicleUpdateRequest represents the JSON body for a partial vehicle update
// swagger:model VehicleUpdateRequest
type VehicleUpdateRequest struct {
	// Vehicle identification number, 17 characters
	VIN *string `json:"vin" validate:"omitempty,len=17"`

	// Manufacturer
	Manufacturer *string `json:"manufacturer"`

	// Model
	Model *string `json:"model"`

	// Body style
	Body *string `json:"body"`

	// Production year
	Year *int `json:"year" validate:"omitempty,gte=1886"`
}

// NewVehicleCreateHandler returns an HTTP handler registering a vehicle
// for the authenticated user. Works are seeded from the pattern library
// in the same transaction.
// @Summary Register a vehicle
// @Description Validates the VIN checksum, stores the vehicle under the current user and seeds one work per pattern.
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicleCreateRequest body handlers.VehicleCreateRequest true "Vehicle registration request"
// @Success 201 {object} models.VehicleDB "Vehicle registered"
// @Failure 400 {object} handlers.ErrorResponse "VIN already registered / invalid request"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation or VIN checksum failed"
// @Router /vehicles [post]
func NewVehicleCreateHandler(svc VehicleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req VehicleCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		vehicle, err := svc.Create(r.Context(), models.VehicleCreate{
			OwnerID:      claims.UserID,
			VIN:          req.VIN,
			Manufacturer: req.Manufacturer,
			Model:        req.Model,
			Body:         req.Body,
			Year:         req.Year,
			Mileage:      req.Mileage,
		})
		if err != nil {
			switch {
			case errors.Is(err, vin.ErrFormat), errors.Is(err, vin.ErrChecksum):
				writeError(w, http.StatusUnprocessableEntity, "Invalid VIN: "+err.Error())
			case errors.Is(err, services.ErrVehicleAlreadyExists):
				writeError(w, http.StatusBadRequest, "Vehicle with this VIN already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, vehicle)
	}
}

// NewVehicleListHandler returns an HTTP handler listing all vehicles.
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.VehicleDB "Vehicles ordered by id"
// @Router /vehicles [get]
func NewVehicleListHandler(svc VehicleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, vehicles)
	}
}

// NewOwnerVehiclesHandler returns an HTTP handler listing the vehicles
// of one user.
// @Summary List a user's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} models.VehicleDB "Vehicles ordered by id"
// @Router /users/{id}/vehicles [get]
func NewOwnerVehiclesHandler(svc VehicleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		vehicles, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, vehicles)
	}
}

// NewVehicleGetHandler returns an HTTP handler reading one vehicle by id.
// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.VehicleDB "Vehicle"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /vehicles/{id} [get]
func NewVehicleGetHandler(svc VehicleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}

		vehicle, err := svc.GetByID(r.Context(), id)
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
		writeJSON(w, http.StatusOK, vehicle)
	}
}

// NewVehicleByVINHandler returns an HTTP handler reading one vehicle by
// its VIN. The lookup key is validated like a stored VIN.
// @Summary Get vehicle by VIN
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param vin path string true "Vehicle identification number"
// @Success 200 {object} models.VehicleDB "Vehicle"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "VIN format or checksum failed"
// @Router /vehicles/by-vin/{vin} [get]
func NewVehicleByVINHandler(svc VehicleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "vin")

		vehicle, err := svc.GetByVIN(r.Context(), code)
		if err != nil {
			switch {
			case errors.Is(err, vin.ErrFormat), errors.Is(err, vin.ErrChecksum):
				writeError(w, http.StatusUnprocessableEntity, "Invalid VIN: "+err.Error())
			case errors.Is(err, services.ErrVehicleNotFound):
				writeError(w, http.StatusNotFound, "Vehicle not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, vehicle)
	}
}

// NewVehicleUpdateHandler returns an HTTP handler for partial vehicle
// updates. Mileage is deliberately not updatable here; it only moves
// through the event ratchet.
// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param vehicleUpdateRequest body handlers.VehicleUpdateRequest true "Fields to update"
// @Success 200 {object} models.VehicleDB "Updated vehicle"
// @Failure 400 {object} handlers.ErrorResponse "VIN already registered / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation or VIN checksum failed"
// @Router /vehicles/{id} [patch]
func NewVehicleUpdateHandler(svc VehicleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}

		var req VehicleUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		vehicle, err := svc.Update(r.Context(), id, models.VehicleUpdate{
			VIN:          req.VIN,
			Manufacturer: req.Manufacturer,
			Model:        req.Model,
			Body:         req.Body,
			Year:         req.Year,
		})
		if err != nil {
			switch {
			case errors.Is(err, vin.ErrFormat), errors.Is(err, vin.ErrChecksum):
				writeError(w, http.StatusUnprocessableEntity, "Invalid VIN: "+err.Error())
			case errors.Is(err, services.ErrVehicleAlreadyExists):
				writeError(w, http.StatusBadRequest, "Vehicle with this VIN already exists")
			case errors.Is(err, services.ErrVehicleNotFound):
				writeError(w, http.StatusNotFound, "Vehicle not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, vehicle)
	}
}

// NewVehicleDeleteHandler returns an HTTP handler deleting a vehicle
// and, by cascade, its works and events.
// @Summary Delete vehicle
// @Tags vehicles
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 204 "Vehicle deleted"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /vehicles/{id} [delete]
func NewVehicleDeleteHandler(svc VehicleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}

		err = svc.Delete(r.Context(), id)
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
		w.WriteHeader(http.StatusNoContent)
	}
}
