package park_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/facility"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVehicleSize = "некорректный размер автомобиля, ожидается small, medium или large"
	msgInvalidEntryPoint  = "некорректный номер въезда"
	msgAlreadyParked      = "автомобиль с таким id уже припаркован"
	msgNoSlotAvailable    = "нет свободного подходящего слота"
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

// Handle POST /api/v1/vehicles/park
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ParkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/park - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP модель в доменный Vehicle (с валидацией размера)
	vehicle, err := req.ToDomainVehicle()
	if err != nil {
		h.logger.Warn("POST /vehicles/park - Invalid vehicle: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleSize)
		return
	}

	session, err := h.service.Park(req.EntryPoint, vehicle)
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrInvalidEntryPoint):
			h.logger.Warn("POST /vehicles/park - Invalid entry point: entry_point=%d, vehicle_id=%s",
				req.EntryPoint, req.Vehicle.ID)
			handlers.RespondBadRequest(w, msgInvalidEntryPoint)

		case errors.Is(err, facility.ErrVehicleAlreadyParked):
			h.logger.Warn("POST /vehicles/park - Already parked: vehicle_id=%s", req.Vehicle.ID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyParked)

		case errors.Is(err, facility.ErrNoSlotAvailable):
			h.logger.Warn("POST /vehicles/park - No slot available: vehicle_id=%s, size=%s",
				req.Vehicle.ID, req.Vehicle.Size)
			handlers.RespondNotFound(w, msgNoSlotAvailable)

		case errors.Is(err, domain.ErrInvalidVehicleSize):
			h.logger.Warn("POST /vehicles/park - Invalid vehicle size: vehicle_id=%s", req.Vehicle.ID)
			handlers.RespondBadRequest(w, msgInvalidVehicleSize)

		default:
			h.logger.Error("POST /vehicles/park - Failed to park: vehicle_id=%s, error=%v",
				req.Vehicle.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/park - Vehicle parked: vehicle_id=%s, slot_id=%s",
		session.Vehicle.ID, session.Slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainSession(session))
}
