package advance_time

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// AdvanceRequest HTTP request model
type AdvanceRequest struct {
	Hours float64 `json:"hours"`
}

// AdvanceResponse HTTP response model
type AdvanceResponse struct {
	CurrentTime float64 `json:"currentTime"`
}

// Handle POST /api/v1/time/advance
//
// Неположительный сдвиг - ожидаемый бизнес-исход, а не ошибка протокола:
// часы не меняются, в ответе прежнее время.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdvanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time/advance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	currentTime := h.service.AdvanceTime(req.Hours)

	h.logger.Info("POST /time/advance - Time advanced by %vh, current time is %vh", req.Hours, currentTime)
	handlers.RespondJSON(w, http.StatusOK, AdvanceResponse{CurrentTime: currentTime})
}
