package get_available_slots

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotModel HTTP model of an available slot
type SlotModel struct {
	ID        string    `json:"id"`
	Size      string    `json:"size"`
	Distances []float64 `json:"distances"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CurrentTime float64     `json:"currentTime"`
	Slots       []SlotModel `json:"slots"`
}

// FromDomainSlots конвертирует снимок пула в HTTP response
func FromDomainSlots(currentTime float64, slots []*domain.Slot) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		CurrentTime: currentTime,
		Slots:       make([]SlotModel, 0, len(slots)),
	}
	for _, slot := range slots {
		result.Slots = append(result.Slots, SlotModel{
			ID:        slot.ID,
			Size:      slot.Size.String(),
			Distances: slot.Distances,
		})
	}
	return result
}
