package domain

// VehicleSize represents the size class of a vehicle.
// The ordering matches SlotSize: a vehicle fits any slot of the same
// or a larger class.
type VehicleSize int

const (
	VehicleSmall  VehicleSize = 1
	VehicleMedium VehicleSize = 2
	VehicleLarge  VehicleSize = 3
)

// IsValid returns true if the size is one of the defined classes
func (v VehicleSize) IsValid() bool {
	return v == VehicleSmall || v == VehicleMedium || v == VehicleLarge
}

func (v VehicleSize) String() string {
	switch v {
	case VehicleSmall:
		return "small"
	case VehicleMedium:
		return "medium"
	case VehicleLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseVehicleSize converts an API label into a VehicleSize
func ParseVehicleSize(s string) (VehicleSize, error) {
	switch s {
	case "small":
		return VehicleSmall, nil
	case "medium":
		return VehicleMedium, nil
	case "large":
		return VehicleLarge, nil
	default:
		return 0, ErrInvalidVehicleSize
	}
}

// Vehicle represents a vehicle entering the facility. Immutable.
// The ID must be unique among currently parked vehicles.
type Vehicle struct {
	ID   string
	Size VehicleSize
}

// NewVehicle builds a validated vehicle
func NewVehicle(id string, size VehicleSize) (*Vehicle, error) {
	if !size.IsValid() {
		return nil, ErrInvalidVehicleSize
	}
	return &Vehicle{
		ID:   id,
		Size: size,
	}, nil
}
