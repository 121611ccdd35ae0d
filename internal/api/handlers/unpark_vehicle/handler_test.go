package unpark_vehicle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/facility"
	"github.com/m04kA/SMC-ParkingService/internal/service/rates"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(t *testing.T) (*mux.Router, *facility.Service) {
	t.Helper()

	svc, err := facility.NewService(3, rates.NewService(rates.DefaultSchedule()), nil, nopLogger{})
	require.NoError(t, err)

	mp, err := domain.NewSlot("MP", domain.SlotMedium, []float64{8, 3, 1})
	require.NoError(t, err)
	require.NoError(t, svc.RegisterSlots([]*domain.Slot{mp}))

	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/vehicles/{vehicleId}/unpark", h.Handle).Methods(http.MethodPost)
	return r, svc
}

func TestHandle_UnparksVehicle(t *testing.T) {
	router, svc := newRouter(t)

	vehicle, err := domain.NewVehicle("M-1", domain.VehicleMedium)
	require.NoError(t, err)
	_, err = svc.Park(0, vehicle)
	require.NoError(t, err)
	svc.AdvanceTime(2)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/M-1/unpark", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UnparkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "M-1", resp.VehicleID)
	assert.Equal(t, "MP", resp.SlotID)
	assert.Equal(t, 2, resp.TotalHours)
	assert.Equal(t, 40.0, resp.Charge)

	// слот вернулся в пул
	assert.Len(t, svc.AvailableSlots(), 1)
}

func TestHandle_VehicleNotFound(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/404/unpark", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
