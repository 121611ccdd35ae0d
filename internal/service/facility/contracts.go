package facility

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// RateCalculator интерфейс сервиса тарификации
type RateCalculator interface {
	Calculate(startTime, endTime float64, slotSize domain.SlotSize) domain.RateResult
}

// MetricsRecorder интерфейс для записи доменных метрик
type MetricsRecorder interface {
	SetOccupancy(parked, available int)
	ObserveCharge(amount float64)
	IncParkRejection(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
