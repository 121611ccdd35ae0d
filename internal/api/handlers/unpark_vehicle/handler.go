package unpark_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/facility"
)

const (
	msgVehicleNotFound = "автомобиль не найден среди припаркованных"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/unpark
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]

	receipt, err := h.service.Unpark(vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{vehicleId}/unpark - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("POST /vehicles/{vehicleId}/unpark - Failed to unpark: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{vehicleId}/unpark - Vehicle released: vehicle_id=%s, slot_id=%s, charge=%v",
		receipt.VehicleID, receipt.SlotID, receipt.Charge)
	handlers.RespondJSON(w, http.StatusOK, FromReceipt(receipt))
}
