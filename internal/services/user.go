package services

import (
	"context"
	"errors"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/repositories"
)

// ErrUserNotFound is returned when a user id resolves to nothing.
var ErrUserNotFound = errors.New("user not found")

// UserService handles user CRUD beyond registration.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// List returns all users ordered by id.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.List(ctx)
}

// GetByID returns a single user.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial update. Only fields present in upd change.
func (svc *UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error) {
	user, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user together with all owned vehicles.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
