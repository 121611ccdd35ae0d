package advance_time

type FacilityService interface {
	AdvanceTime(hours float64) float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
