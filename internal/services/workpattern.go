package services

import (
	"context"
	"errors"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
)

// ErrWorkPatternNotFound is returned when a pattern id resolves to
// nothing.
var ErrWorkPatternNotFound = errors.New("work pattern not found")

// WorkPatternReader defines read-only operations for patterns.
type WorkPatternReader interface {
	GetByID(ctx context.Context, id int64) (*models.WorkPatternDB, error)
	List(ctx context.Context) ([]models.WorkPatternDB, error)
}

// WorkPatternWriter defines write operations for patterns.
type WorkPatternWriter interface {
	Create(ctx context.Context, data models.WorkPatternCreate) (*models.WorkPatternDB, error)
	Update(ctx context.Context, id int64, upd models.WorkPatternUpdate) (*models.WorkPatternDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WorkPatternCache caches the pattern library.
type WorkPatternCache interface {
	Get(ctx context.Context) ([]models.WorkPatternDB, error)
	Set(ctx context.Context, patterns []models.WorkPatternDB) error
	Invalidate(ctx context.Context) error
}

// WorkPatternService manages the global maintenance-template library.
// Reads go through the cache; every write invalidates it.
type WorkPatternService struct {
	reader WorkPatternReader
	writer WorkPatternWriter
	cache  WorkPatternCache
}

// NewWorkPatternService creates a new WorkPatternService instance.
func NewWorkPatternService(reader WorkPatternReader, writer WorkPatternWriter, cache WorkPatternCache) *WorkPatternService {
	return &WorkPatternService{reader: reader, writer: writer, cache: cache}
}

// List returns the whole pattern library, served from cache when
// possible. Cache failures degrade to a database read.
func (svc *WorkPatternService) List(ctx context.Context) ([]models.WorkPatternDB, error) {
	cached, err := svc.cache.Get(ctx)
	if err != nil {
		logger.Log.Errorw("work pattern cache read failed", "err", err)
	} else if cached != nil {
		return cached, nil
	}

	patterns, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := svc.cache.Set(ctx, patterns); err != nil {
		logger.Log.Errorw("work pattern cache write failed", "err", err)
	}
	return patterns, nil
}

// GetByID returns a single pattern.
func (svc *WorkPatternService) GetByID(ctx context.Context, id int64) (*models.WorkPatternDB, error) {
	pattern, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get work pattern", "err", err)
		return nil, err
	}
	if pattern == nil {
		return nil, ErrWorkPatternNotFound
	}
	return pattern, nil
}

// Create adds a pattern to the library.
func (svc *WorkPatternService) Create(ctx context.Context, data models.WorkPatternCreate) (*models.WorkPatternDB, error) {
	pattern, err := svc.writer.Create(ctx, data)
	if err != nil {
		logger.Log.Errorw("failed to create work pattern", "err", err)
		return nil, err
	}
	svc.invalidate(ctx)
	return pattern, nil
}

// Update applies a partial update. Existing works seeded from the
// pattern keep their snapshot and are not rewritten.
func (svc *WorkPatternService) Update(ctx context.Context, id int64, upd models.WorkPatternUpdate) (*models.WorkPatternDB, error) {
	pattern, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update work pattern", "err", err)
		return nil, err
	}
	if pattern == nil {
		return nil, ErrWorkPatternNotFound
	}
	svc.invalidate(ctx)
	return pattern, nil
}

// Delete removes a pattern from the library.
func (svc *WorkPatternService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete work pattern", "err", err)
		return err
	}
	if !deleted {
		return ErrWorkPatternNotFound
	}
	svc.invalidate(ctx)
	return nil
}

func (svc *WorkPatternService) invalidate(ctx context.Context) {
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("work pattern cache invalidation failed", "err", err)
	}
}
