package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
)

func newWorkServiceMocks(ctrl *gomock.Controller) (
	*services.MockWorkReader,
	*services.MockWorkWriter,
	*services.MockVehicleReader,
	*services.MockWorkEventReader,
	*services.WorkService,
) {
	reader := services.NewMockWorkReader(ctrl)
	writer := services.NewMockWorkWriter(ctrl)
	vehicles := services.NewMockVehicleReader(ctrl)
	events := services.NewMockWorkEventReader(ctrl)
	svc := services.NewWorkService(reader, writer, vehicles, events)
	return reader, writer, vehicles, events, svc
}

func TestWorkService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, writer, vehicles, _, svc := newWorkServiceMocks(ctrl)
	ctx := context.Background()

	t.Run("defaults the work type", func(t *testing.T) {
		vehicles.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.VehicleDB{ID: 10}, nil)
		writer.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data models.WorkCreate) (*models.WorkDB, error) {
				assert.Equal(t, models.WorkTypeMaintenance, data.WorkType)
				return &models.WorkDB{ID: 3, VehicleID: 10, Title: data.Title, WorkType: data.WorkType}, nil
			})

		work, err := svc.Create(ctx, models.WorkCreate{VehicleID: 10, Title: "Oil change"})
		require.NoError(t, err)
		assert.Equal(t, models.WorkTypeMaintenance, work.WorkType)
	})

	t.Run("keeps an explicit work type", func(t *testing.T) {
		vehicles.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.VehicleDB{ID: 10}, nil)
		writer.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data models.WorkCreate) (*models.WorkDB, error) {
				assert.Equal(t, models.WorkTypeRepair, data.WorkType)
				return &models.WorkDB{ID: 4, VehicleID: 10, WorkType: data.WorkType}, nil
			})

		work, err := svc.Create(ctx, models.WorkCreate{VehicleID: 10, Title: "Gasket", WorkType: models.WorkTypeRepair})
		require.NoError(t, err)
		assert.Equal(t, models.WorkTypeRepair, work.WorkType)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		vehicles.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		work, err := svc.Create(ctx, models.WorkCreate{VehicleID: 99, Title: "Oil change"})
		assert.ErrorIs(t, err, services.ErrVehicleNotFound)
		assert.Nil(t, work)
	})
}

func TestWorkService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader, _, _, _, svc := newWorkServiceMocks(ctrl)
	ctx := context.Background()

	reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.WorkDB{ID: 3, Title: "Oil change"}, nil)
	work, err := svc.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Oil change", work.Title)

	reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
	work, err = svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, services.ErrWorkNotFound)
	assert.Nil(t, work)
}

func TestWorkService_ListByVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader, _, vehicles, _, svc := newWorkServiceMocks(ctrl)
	ctx := context.Background()

	t.Run("existing vehicle", func(t *testing.T) {
		vehicles.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.VehicleDB{ID: 10}, nil)
		reader.EXPECT().ListByVehicle(gomock.Any(), int64(10)).
			Return([]models.WorkDB{{ID: 3, VehicleID: 10}}, nil)

		works, err := svc.ListByVehicle(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, works, 1)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		vehicles.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		works, err := svc.ListByVehicle(ctx, 99)
		assert.ErrorIs(t, err, services.ErrVehicleNotFound)
		assert.Nil(t, works)
	})
}

func TestWorkService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, writer, _, _, svc := newWorkServiceMocks(ctrl)
	ctx := context.Background()

	note := "every 10k"
	writer.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).
		Return(&models.WorkDB{ID: 3, Note: note}, nil)
	work, err := svc.Update(ctx, 3, models.WorkUpdate{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, note, work.Note)

	writer.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).Return(nil, nil)
	work, err = svc.Update(ctx, 99, models.WorkUpdate{Note: &note})
	assert.ErrorIs(t, err, services.ErrWorkNotFound)
	assert.Nil(t, work)
}

func TestWorkService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, writer, _, _, svc := newWorkServiceMocks(ctrl)
	ctx := context.Background()

	writer.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)
	assert.NoError(t, svc.Delete(ctx, 3))

	writer.EXPECT().Delete(gomock.Any(), int64(99)).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 99), services.ErrWorkNotFound)
}

func TestWorkService_AverageMileageInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader, _, _, events, svc := newWorkServiceMocks(ctrl)
	ctx := context.Background()

	work := &models.WorkDB{ID: 3, VehicleID: 10, Title: "Oil change"}

	t.Run("mean gap between consecutive events", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(work, nil)
		events.EXPECT().ListByWorkOrderedByMileage(gomock.Any(), int64(3)).Return([]models.WorkEventDB{
			{ID: 1, WorkID: 3, Mileage: 10000},
			{ID: 2, WorkID: 3, Mileage: 25000},
			{ID: 3, WorkID: 3, Mileage: 40000},
		}, nil)

		interval, err := svc.AverageMileageInterval(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), interval)
	})

	t.Run("uneven gaps truncate toward zero", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(work, nil)
		events.EXPECT().ListByWorkOrderedByMileage(gomock.Any(), int64(3)).Return([]models.WorkEventDB{
			{ID: 1, WorkID: 3, Mileage: 10000},
			{ID: 2, WorkID: 3, Mileage: 10001},
			{ID: 3, WorkID: 3, Mileage: 10003},
		}, nil)

		interval, err := svc.AverageMileageInterval(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), interval)
	})

	t.Run("single event", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(work, nil)
		events.EXPECT().ListByWorkOrderedByMileage(gomock.Any(), int64(3)).
			Return([]models.WorkEventDB{{ID: 1, WorkID: 3, Mileage: 10000}}, nil)

		interval, err := svc.AverageMileageInterval(ctx, 3)
		require.NoError(t, err)
		assert.Zero(t, interval)
	})

	t.Run("no events", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(work, nil)
		events.EXPECT().ListByWorkOrderedByMileage(gomock.Any(), int64(3)).Return(nil, nil)

		interval, err := svc.AverageMileageInterval(ctx, 3)
		require.NoError(t, err)
		assert.Zero(t, interval)
	})

	t.Run("unknown work", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		interval, err := svc.AverageMileageInterval(ctx, 99)
		assert.ErrorIs(t, err, services.ErrWorkNotFound)
		assert.Zero(t, interval)
	})
}
