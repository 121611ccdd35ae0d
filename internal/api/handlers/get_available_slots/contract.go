package get_available_slots

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type FacilityService interface {
	AvailableSlots() []*domain.Slot
	Time() float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
