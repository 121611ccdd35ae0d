package domain

// Facility constraints
const (
	// MinEntryPoints is the minimum number of entry points mandated by the domain
	MinEntryPoints = 3

	// ContinuityWindowHours is the grace period after checkout within which a
	// re-entry is billed as a continuation of the same stay
	ContinuityWindowHours = 1.0
)

// Default rate schedule
const (
	DefaultFlatAmount   = 40.0
	DefaultFlatHours    = 3
	DefaultPerDayAmount = 5000.0
	DefaultHoursPerDay  = 24

	DefaultHourlySmall  = 20.0
	DefaultHourlyMedium = 60.0
	DefaultHourlyLarge  = 100.0
)
