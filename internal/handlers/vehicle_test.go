package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/services"
	"github.com/drivelog/drivelog-api/internal/vin"
)

const testVIN = "JHMCM56557C404453"

func TestVehicleCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVehicleCreator(ctrl)
	handler := NewVehicleCreateHandler(mockSvc)

	validBody := `{"vin":"` + testVIN + `","manufacturer":"Honda","model":"Accord","year":2007,"mileage":120000}`

	t.Run("registers under the authenticated user", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), models.VehicleCreate{
				OwnerID:      7,
				VIN:          testVIN,
				Manufacturer: "Honda",
				Model:        "Accord",
				Year:         2007,
				Mileage:      120000,
			}).
			Return(&models.VehicleDB{ID: 10, OwnerID: 7, VIN: testVIN}, nil)

		req := authenticated(httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(validBody)), 7)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var vehicle models.VehicleDB
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vehicle))
		assert.Equal(t, int64(10), vehicle.ID)
		assert.Equal(t, int64(7), vehicle.OwnerID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(validBody))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("vin checksum rejected", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, vin.ErrChecksum)

		req := authenticated(httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(validBody)), 7)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid VIN")
	})

	t.Run("duplicate vin", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrVehicleAlreadyExists)

		req := authenticated(httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(validBody)), 7)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("vin length validated before the service", func(t *testing.T) {
		short := `{"vin":"SHORT","manufacturer":"Honda","model":"Accord","year":2007}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(short)), 7)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("year before the first automobile", func(t *testing.T) {
		old := `{"vin":"` + testVIN + `","manufacturer":"Benz","model":"Motorwagen","year":1800}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(old)), 7)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestVehicleGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVehicleGetter(ctrl)
	handler := NewVehicleGetHandler(mockSvc)

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetByID(gomock.Any(), int64(10)).
			Return(&models.VehicleDB{ID: 10, VIN: testVIN}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/vehicles/10", nil), "id", "10")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, services.ErrVehicleNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/vehicles/99", nil), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/vehicles/abc", nil), "id", "abc")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestVehicleByVINHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVehicleGetter(ctrl)
	handler := NewVehicleByVINHandler(mockSvc)

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetByVIN(gomock.Any(), testVIN).
			Return(&models.VehicleDB{ID: 10, VIN: testVIN}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/vehicles/by-vin/"+testVIN, nil), "vin", testVIN)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid vin", func(t *testing.T) {
		mockSvc.EXPECT().GetByVIN(gomock.Any(), "not-a-vin").Return(nil, vin.ErrFormat)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/vehicles/by-vin/not-a-vin", nil), "vin", "not-a-vin")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("unknown vin", func(t *testing.T) {
		mockSvc.EXPECT().GetByVIN(gomock.Any(), testVIN).Return(nil, services.ErrVehicleNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/vehicles/by-vin/"+testVIN, nil), "vin", testVIN)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestVehicleUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVehicleUpdater(ctrl)
	handler := NewVehicleUpdateHandler(mockSvc)

	t.Run("partial update", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(10), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, upd models.VehicleUpdate) (*models.VehicleDB, error) {
				require.NotNil(t, upd.Body)
				assert.Equal(t, "wagon", *upd.Body)
				assert.Nil(t, upd.VIN)
				return &models.VehicleDB{ID: 10, Body: "wagon"}, nil
			})

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/vehicles/10", strings.NewReader(`{"body":"wagon"}`)), "id", "10")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("empty body is a no-op read", func(t *testing.T) {
		mockSvc.EXPECT().Update(gomock.Any(), int64(10), models.VehicleUpdate{}).
			Return(&models.VehicleDB{ID: 10, VIN: testVIN}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/vehicles/10", strings.NewReader(`{}`)), "id", "10")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).Return(nil, services.ErrVehicleNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/vehicles/99", strings.NewReader(`{"body":"wagon"}`)), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestVehicleDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVehicleDeleter(ctrl)
	handler := NewVehicleDeleteHandler(mockSvc)

	t.Run("deleted", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/vehicles/10", nil), "id", "10")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), int64(99)).Return(services.ErrVehicleNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/vehicles/99", nil), "id", "99")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestOwnerVehiclesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVehicleLister(ctrl)
	handler := NewOwnerVehiclesHandler(mockSvc)

	mockSvc.EXPECT().ListByOwner(gomock.Any(), int64(7)).
		Return([]models.VehicleDB{{ID: 10, OwnerID: 7, VIN: testVIN}}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/7/vehicles", nil), "id", "7")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var vehicles []models.VehicleDB
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, int64(7), vehicles[0].OwnerID)
}
