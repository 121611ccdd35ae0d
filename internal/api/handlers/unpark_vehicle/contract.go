package unpark_vehicle

import (
	"github.com/m04kA/SMC-ParkingService/internal/service/facility/models"
)

type FacilityService interface {
	Unpark(vehicleID string) (*models.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
