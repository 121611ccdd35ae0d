package domain

// SlotSize represents the size class of a parking slot
type SlotSize int

const (
	SlotSmall  SlotSize = 1
	SlotMedium SlotSize = 2
	SlotLarge  SlotSize = 3
)

// IsValid returns true if the size is one of the defined classes
func (s SlotSize) IsValid() bool {
	return s == SlotSmall || s == SlotMedium || s == SlotLarge
}

// Accommodates returns true if a vehicle of the given size fits into a slot
// of this size. A slot can host any vehicle no larger than itself.
func (s SlotSize) Accommodates(v VehicleSize) bool {
	return int(v) <= int(s)
}

func (s SlotSize) String() string {
	switch s {
	case SlotSmall:
		return "small"
	case SlotMedium:
		return "medium"
	case SlotLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseSlotSize converts a config/API label into a SlotSize
func ParseSlotSize(s string) (SlotSize, error) {
	switch s {
	case "small":
		return SlotSmall, nil
	case "medium":
		return SlotMedium, nil
	case "large":
		return SlotLarge, nil
	default:
		return 0, ErrInvalidSlotSize
	}
}

// Slot represents a single parking slot. Immutable after construction.
// Distances holds one entry per facility entry point; whether the vector
// length matches the facility is checked at registration time, since a slot
// is built before it knows which facility it joins.
type Slot struct {
	ID        string
	Size      SlotSize
	Distances []float64
}

// NewSlot builds a validated slot: the size class must be defined and every
// distance strictly positive.
func NewSlot(id string, size SlotSize, distances []float64) (*Slot, error) {
	if !size.IsValid() {
		return nil, ErrInvalidSlotSize
	}
	for _, d := range distances {
		if d <= 0 {
			return nil, ErrNonPositiveDistance
		}
	}
	return &Slot{
		ID:        id,
		Size:      size,
		Distances: distances,
	}, nil
}

// DistanceFrom returns the distance between this slot and the given entry point
func (s *Slot) DistanceFrom(entryPoint int) float64 {
	return s.Distances[entryPoint]
}
