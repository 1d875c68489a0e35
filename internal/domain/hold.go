package domain

import "time"

// Hold is a tentative reservation created in the external calendar while a slot is disputed
type Hold struct {
	Start     time.Time
	End       time.Time
	Service   string
	ExpiresAt time.Time
	Strategic bool
}

// IsExpired returns true if the hold is no longer valid at the given instant
func (h *Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// Duration returns the reserved interval length
func (h *Hold) Duration() time.Duration {
	return h.End.Sub(h.Start)
}

// BusyInterval is a busy period reported by the calendar provider (RFC3339 strings)
type BusyInterval struct {
	Start string
	End   string
}

// Event is an upcoming calendar event
type Event struct {
	ID       string
	Summary  string
	Status   string
	Start    string // RFC3339 dateTime or YYYY-MM-DD for all-day events
	End      string
	HTMLLink string

	// Hold metadata, empty for regular bookings
	Hold      bool
	Strategic bool
	Service   string
	ExpiresAt string
}
