package unpark_vehicle

import (
	"github.com/m04kA/SMC-ParkingService/internal/service/facility/models"
)

// UnparkResponse HTTP response model: чек за стоянку
type UnparkResponse struct {
	VehicleID      string  `json:"vehicleId"`
	SlotID         string  `json:"slotId"`
	StartTime      float64 `json:"startTime"`
	EndTime        float64 `json:"endTime"`
	TotalHours     int     `json:"totalHours"`
	Days           int     `json:"days"`
	ExceedingHours int     `json:"exceedingHours"`
	Charge         float64 `json:"charge"`
}

// FromReceipt конвертирует чек сервиса в HTTP response
func FromReceipt(receipt *models.Receipt) *UnparkResponse {
	return &UnparkResponse{
		VehicleID:      receipt.VehicleID,
		SlotID:         receipt.SlotID,
		StartTime:      receipt.StartTime,
		EndTime:        receipt.EndTime,
		TotalHours:     receipt.Rate.TotalHours,
		Days:           receipt.Rate.Days,
		ExceedingHours: receipt.Rate.ExceedingHours,
		Charge:         receipt.Charge,
	}
}
