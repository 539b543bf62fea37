package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
)

func TestWorkEventCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEventCreator(ctrl)
	handler := NewWorkEventCreateHandler(mockSvc)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "recorded",
			body: `{"work_id":3,"work_date":"2026-03-14T00:00:00Z","mileage":45000,"part_price":45.5,"work_price":30}`,
			setupMocks: func() {
				mockSvc.EXPECT().
					CreateWorkEvent(gomock.Any(), models.WorkEventCreate{
						WorkID:    3,
						WorkDate:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
						Mileage:   45000,
						PartPrice: 45.5,
						WorkPrice: 30,
					}).
					Return(&models.WorkEventDB{ID: 9, WorkID: 3, Mileage: 45000}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown work",
			body: `{"work_id":99,"work_date":"2026-03-14T00:00:00Z","mileage":45000}`,
			setupMocks: func() {
				mockSvc.EXPECT().CreateWorkEvent(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrWorkNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing date",
			body:           `{"work_id":3,"mileage":45000}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "negative mileage",
			body:           `{"work_id":3,"work_date":"2026-03-14T00:00:00Z","mileage":-1}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid json body",
			body:           `{"work_id"`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/work-events", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestWorkEventGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEventGetter(ctrl)
	handler := NewWorkEventGetHandler(mockSvc)

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetWorkEvent(gomock.Any(), int64(9)).
			Return(&models.WorkEventDB{ID: 9, WorkID: 3}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/work-events/9", nil), "id", "9")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetWorkEvent(gomock.Any(), int64(99)).
			Return(nil, services.ErrWorkEventNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/work-events/99", nil), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWorkEventsListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEventLister(ctrl)
	handler := NewWorkEventsListHandler(mockSvc)

	t.Run("listed", func(t *testing.T) {
		mockSvc.EXPECT().ListWorkEvents(gomock.Any(), int64(3)).
			Return([]models.WorkEventDB{{ID: 9, WorkID: 3}}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/works/3/events", nil), "id", "3")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown work", func(t *testing.T) {
		mockSvc.EXPECT().ListWorkEvents(gomock.Any(), int64(99)).
			Return(nil, services.ErrWorkNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/works/99/events", nil), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWorkEventUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEventUpdater(ctrl)
	handler := NewWorkEventUpdateHandler(mockSvc)

	t.Run("partial update", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateWorkEvent(gomock.Any(), int64(9), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, upd models.WorkEventUpdate) (*models.WorkEventDB, error) {
				assert.NotNil(t, upd.PartPrice)
				assert.Nil(t, upd.Mileage)
				return &models.WorkEventDB{ID: 9, PartPrice: *upd.PartPrice}, nil
			})

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/work-events/9", strings.NewReader(`{"part_price":52.9}`)), "id", "9")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().UpdateWorkEvent(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, services.ErrWorkEventNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/work-events/99", strings.NewReader(`{"note":"rescheduled"}`)), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWorkEventDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEventDeleter(ctrl)
	handler := NewWorkEventDeleteHandler(mockSvc)

	t.Run("deleted", func(t *testing.T) {
		mockSvc.EXPECT().DeleteWorkEvent(gomock.Any(), int64(9)).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/work-events/9", nil), "id", "9")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().DeleteWorkEvent(gomock.Any(), int64(99)).
			Return(services.ErrWorkEventNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/work-events/99", nil), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
