package domain

import "github.com/m04kA/kstudio-agenda/pkg/types"

// SlotStatus represents the public availability state of a slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotDisputed  SlotStatus = "disputed"
	SlotFull      SlotStatus = "full"
)

// Slot represents one bookable start time inside a session.
// Slots are derived on every render and never persisted.
type Slot struct {
	Session         string
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
	Strategic       bool

	// Countdown state, set only for disputed slots. Every disputed slot in view
	// owns a countdown; it stays at zero after expiry until the slot leaves the view.
	CountdownSeconds int
	CountdownRunning bool

	// HoldID is the calendar event created for this slot, empty until a hold is requested
	HoldID string
}

// Key returns the identity of the slot inside a day
func (s Slot) Key() SlotKey {
	return SlotKey{Session: s.Session, StartTime: s.StartTime}
}

// IsAvailable returns true if the slot can be booked directly
func (s Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsDisputed returns true if the slot is held or strategically blocked
func (s Slot) IsDisputed() bool {
	return s.Status == SlotDisputed
}

// IsFull returns true if the slot cannot be booked
func (s Slot) IsFull() bool {
	return s.Status == SlotFull
}

// SlotKey identifies a slot by session label and start time
type SlotKey struct {
	Session   string
	StartTime types.TimeString
}

// String returns "<session>@HH:MM"
func (k SlotKey) String() string {
	return k.Session + "@" + k.StartTime.String()
}

// SessionSlots is the slot column of one session
type SessionSlots struct {
	Session Session
	Slots   []Slot
}

// SlotGrid is the full grid for the selected service and date
type SlotGrid struct {
	Selection Selection
	Service   Service
	Sessions  []SessionSlots
}
