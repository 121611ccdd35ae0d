package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
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

// Handle GET /api/v1/slots/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.service.AvailableSlots()
	currentTime := h.service.Time()

	h.logger.Info("GET /slots/available - %d slots available at %vh", len(slots), currentTime)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(currentTime, slots))
}
