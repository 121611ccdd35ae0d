package park_vehicle

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// VehicleModel HTTP model of an arriving vehicle
type VehicleModel struct {
	ID   string `json:"id"`
	Size string `json:"size"` // "small" | "medium" | "large"
}

// ParkRequest HTTP request model
type ParkRequest struct {
	EntryPoint int          `json:"entryPoint"`
	Vehicle    VehicleModel `json:"vehicle"`
}

// ParkResponse HTTP response model
type ParkResponse struct {
	SessionID string  `json:"sessionId"`
	SlotID    string  `json:"slotId"`
	SlotSize  string  `json:"slotSize"`
	VehicleID string  `json:"vehicleId"`
	StartTime float64 `json:"startTime"`
}

// ToDomainVehicle конвертирует HTTP модель в доменный Vehicle
func (r *ParkRequest) ToDomainVehicle() (*domain.Vehicle, error) {
	size, err := domain.ParseVehicleSize(r.Vehicle.Size)
	if err != nil {
		return nil, err
	}
	return domain.NewVehicle(r.Vehicle.ID, size)
}

// FromDomainSession конвертирует сессию парковки в HTTP response
func FromDomainSession(session *domain.ParkingSession) *ParkResponse {
	return &ParkResponse{
		SessionID: session.ID.String(),
		SlotID:    session.Slot.ID,
		SlotSize:  session.Slot.Size.String(),
		VehicleID: session.Vehicle.ID,
		StartTime: session.StartTime,
	}
}
