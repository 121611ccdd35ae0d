package domain

import "errors"

var (
	// ErrInvalidSlotSize is returned for a size outside the defined classes
	ErrInvalidSlotSize = errors.New("invalid slot size")

	// ErrInvalidVehicleSize is returned for a size outside the defined classes
	ErrInvalidVehicleSize = errors.New("invalid vehicle size")

	// ErrNonPositiveDistance is returned when a slot distance is zero or negative
	ErrNonPositiveDistance = errors.New("distance must be greater than 0")
)
