package services

import (
	"context"
	"errors"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/repositories"
	"github.com/drivelog/drivelog-api/internal/vin"
)

// Error variables
var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleAlreadyExists = errors.New("vehicle with this VIN already exists")
)

// VehicleReader defines read-only operations for vehicles.
type VehicleReader interface {
	GetByID(ctx context.Context, id int64) (*models.VehicleDB, error)
	GetByVIN(ctx context.Context, vin string) (*models.VehicleDB, error)
	List(ctx context.Context) ([]models.VehicleDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.VehicleDB, error)
}

// VehicleWriter defines write operations for vehicles.
type VehicleWriter interface {
	Create(ctx context.Context, data models.VehicleCreate) (*models.VehicleDB, error)
	Update(ctx context.Context, id int64, upd models.VehicleUpdate) (*models.VehicleDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WorkSeeder bulk-inserts the works seeded at vehicle creation.
type WorkSeeder interface {
	CreateBatch(ctx context.Context, works []models.WorkCreate) error
}

// PatternLister provides the current pattern library.
type PatternLister interface {
	List(ctx context.Context) ([]models.WorkPatternDB, error)
}

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// VehicleService handles vehicle CRUD and work seeding.
type VehicleService struct {
	reader   VehicleReader
	writer   VehicleWriter
	works    WorkSeeder
	patterns PatternLister
	tx       TxRunner
}

// NewVehicleService creates a new VehicleService instance.
func NewVehicleService(reader VehicleReader, writer VehicleWriter, works WorkSeeder, patterns PatternLister, tx TxRunner) *VehicleService {
	return &VehicleService{
		reader:   reader,
		writer:   writer,
		works:    works,
		patterns: patterns,
		tx:       tx,
	}
}

// Create validates the VIN, inserts the vehicle and seeds one work per
// existing pattern, all inside a single transaction: a failed seeding
// rolls the vehicle back too. The seeded works are a snapshot; later
// pattern edits do not touch them.
func (svc *VehicleService) Create(ctx context.Context, data models.VehicleCreate) (*models.VehicleDB, error) {
	normalized, err := vin.Validate(data.VIN)
	if err != nil {
		logger.Log.Errorw("vin validation failed", "vin", data.VIN, "err", err)
		return nil, err
	}
	data.VIN = normalized

	patterns, err := svc.patterns.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list work patterns", "err", err)
		return nil, err
	}

	var vehicle *models.VehicleDB
	err = svc.tx.Run(ctx, func(ctx context.Context) error {
		created, err := svc.writer.Create(ctx, data)
		if err != nil {
			if errors.Is(err, repositories.ErrUniqueViolation) {
				return ErrVehicleAlreadyExists
			}
			return err
		}

		seeds := make([]models.WorkCreate, 0, len(patterns))
		for _, p := range patterns {
			seeds = append(seeds, models.WorkCreate{
				VehicleID:     created.ID,
				Title:         p.Title,
				IntervalMonth: p.IntervalMonth,
				IntervalKM:    p.IntervalKM,
				WorkType:      models.WorkTypeMaintenance,
				Note:          "",
			})
		}
		if err := svc.works.CreateBatch(ctx, seeds); err != nil {
			return err
		}

		vehicle = created
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create vehicle", "vin", data.VIN, "err", err)
		return nil, err
	}

	return vehicle, nil
}

// GetByID returns a single vehicle.
func (svc *VehicleService) GetByID(ctx context.Context, id int64) (*models.VehicleDB, error) {
	vehicle, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// GetByVIN returns the vehicle with the given VIN. The lookup key gets
// the same validation as stored VINs.
func (svc *VehicleService) GetByVIN(ctx context.Context, code string) (*models.VehicleDB, error) {
	normalized, err := vin.Validate(code)
	if err != nil {
		return nil, err
	}

	vehicle, err := svc.reader.GetByVIN(ctx, normalized)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle by vin", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// List returns all vehicles ordered by id.
func (svc *VehicleService) List(ctx context.Context) ([]models.VehicleDB, error) {
	return svc.reader.List(ctx)
}

// ListByOwner returns all vehicles of one user ordered by id.
func (svc *VehicleService) ListByOwner(ctx context.Context, ownerID int64) ([]models.VehicleDB, error) {
	return svc.reader.ListByOwner(ctx, ownerID)
}

// Update applies a partial update. A provided VIN is validated and
// normalized like at creation.
func (svc *VehicleService) Update(ctx context.Context, id int64, upd models.VehicleUpdate) (*models.VehicleDB, error) {
	if upd.VIN != nil {
		normalized, err := vin.Validate(*upd.VIN)
		if err != nil {
			logger.Log.Errorw("vin validation failed", "vin", *upd.VIN, "err", err)
			return nil, err
		}
		upd.VIN = &normalized
	}

	vehicle, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrVehicleAlreadyExists
		}
		logger.Log.Errorw("failed to update vehicle", "err", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// Delete removes a vehicle together with its works and events.
func (svc *VehicleService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete vehicle", "err", err)
		return err
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	return nil
}
