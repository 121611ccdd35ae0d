package park_vehicle

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type FacilityService interface {
	Park(entryPoint int, vehicle *domain.Vehicle) (*domain.ParkingSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
