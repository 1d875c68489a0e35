package domain

// Default configuration values
const (
	DefaultBufferMinutes = 15
	DefaultStepMinutes   = 15
	DefaultHoldSeconds   = 30 * 60
	DefaultTimezone      = "Europe/Lisbon"
	DefaultMaxEvents     = 25
)

// Business validation constants
const (
	MinHoldMinutes = 5
	MaxHoldMinutes = 240
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Private extended properties of a hold event in the external calendar
const (
	HoldPropertyHold      = "hold"
	HoldPropertyStrategic = "strategic"
	HoldPropertyService   = "service"
	HoldPropertyExpiresAt = "expiresAt"
)
