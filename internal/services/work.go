package services

import (
	"context"
	"errors"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
)

// ErrWorkNotFound is returned when a work id resolves to nothing.
var ErrWorkNotFound = errors.New("work not found")

// WorkReader defines read-only operations for works.
type WorkReader interface {
	GetByID(ctx context.Context, id int64) (*models.WorkDB, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.WorkDB, error)
}

// WorkWriter defines write operations for works.
type WorkWriter interface {
	Create(ctx context.Context, data models.WorkCreate) (*models.WorkDB, error)
	Update(ctx context.Context, id int64, upd models.WorkUpdate) (*models.WorkDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WorkService handles per-vehicle works.
type WorkService struct {
	reader   WorkReader
	writer   WorkWriter
	vehicles VehicleReader
	events   WorkEventReader
}

// NewWorkService creates a new WorkService instance.
func NewWorkService(reader WorkReader, writer WorkWriter, vehicles VehicleReader, events WorkEventReader) *WorkService {
	return &WorkService{
		reader:   reader,
		writer:   writer,
		vehicles: vehicles,
		events:   events,
	}
}

// Create adds a work to an existing vehicle.
func (svc *WorkService) Create(ctx context.Context, data models.WorkCreate) (*models.WorkDB, error) {
	vehicle, err := svc.vehicles.GetByID(ctx, data.VehicleID)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if data.WorkType == "" {
		data.WorkType = models.WorkTypeMaintenance
	}

	work, err := svc.writer.Create(ctx, data)
	if err != nil {
		logger.Log.Errorw("failed to create work", "err", err)
		return nil, err
	}
	return work, nil
}

// GetByID returns a single work.
func (svc *WorkService) GetByID(ctx context.Context, id int64) (*models.WorkDB, error) {
	work, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get work", "err", err)
		return nil, err
	}
	if work == nil {
		return nil, ErrWorkNotFound
	}
	return work, nil
}

// ListByVehicle returns all works of an existing vehicle.
func (svc *WorkService) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.WorkDB, error) {
	vehicle, err := svc.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return svc.reader.ListByVehicle(ctx, vehicleID)
}

// Update applies a partial update.
func (svc *WorkService) Update(ctx context.Context, id int64, upd models.WorkUpdate) (*models.WorkDB, error) {
	work, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update work", "err", err)
		return nil, err
	}
	if work == nil {
		return nil, ErrWorkNotFound
	}
	return work, nil
}

// Delete removes a work together with its events.
func (svc *WorkService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete work", "err", err)
		return err
	}
	if !deleted {
		return ErrWorkNotFound
	}
	return nil
}

// AverageMileageInterval returns the mean mileage distance between
// consecutive events of a work, in ascending mileage order. With fewer
// than two events the interval is zero.
func (svc *WorkService) AverageMileageInterval(ctx context.Context, workID int64) (int64, error) {
	work, err := svc.reader.GetByID(ctx, workID)
	if err != nil {
		logger.Log.Errorw("failed to get work", "err", err)
		return 0, err
	}
	if work == nil {
		return 0, ErrWorkNotFound
	}

	events, err := svc.events.ListByWorkOrderedByMileage(ctx, workID)
	if err != nil {
		logger.Log.Errorw("failed to list work events", "err", err)
		return 0, err
	}
	if len(events) <= 1 {
		return 0, nil
	}

	// The deltas telescope: their sum is last minus first.
	total := events[len(events)-1].Mileage - events[0].Mileage
	return total / int64(len(events)-1), nil
}
