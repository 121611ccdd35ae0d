package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Receipt результат выезда автомобиля: разбивка тарифа и сумма к оплате.
// Charge может быть меньше Rate.Charge, если часть стоянки уже была оплачена
// при предыдущем выезде в пределах окна непрерывности.
type Receipt struct {
	VehicleID string
	SlotID    string
	StartTime float64
	EndTime   float64
	Rate      domain.RateResult
	Charge    float64
}
