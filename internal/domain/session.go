package domain

import "github.com/google/uuid"

// ParkingSession represents one active stay: a vehicle occupying a slot.
// Exactly one active session exists per parked vehicle id and per occupied
// slot id. Sessions live in a single table keyed by ID, with vehicle-id and
// slot-id lookup indices maintained alongside it.
type ParkingSession struct {
	ID      uuid.UUID
	Slot    *Slot
	Vehicle *Vehicle

	// StartTime is the effective billing start in logical hours. For a
	// re-entry inside the continuity window it is the original start of the
	// previous stay, not the moment of the new Park.
	StartTime float64
}

// PastEntry retains the last completed stay of a vehicle, solely to support
// the continuity rule. It is overwritten on every checkout of the same
// vehicle and pruned lazily on its next park attempt once stale.
type PastEntry struct {
	Slot      *Slot
	Vehicle   *Vehicle
	StartTime float64
	EndTime   float64
	Rate      RateResult
}

// RateResult is the charge breakdown for one stay interval
type RateResult struct {
	// TotalHours is the billed duration, partial hours rounded up
	TotalHours int
	// Days is the number of whole days billed at the per-day amount
	Days int
	// ExceedingHours is hours beyond the flat allowance or beyond whole days
	ExceedingHours int
	Charge         float64
}
