package domain

import "time"

// Selection is the current UI state of the board
type Selection struct {
	Service     string
	Date        time.Time // date only, midnight in the display timezone
	HoldSeconds int
}

// HoldMinutes returns the hold duration in whole minutes
func (s Selection) HoldMinutes() int {
	return s.HoldSeconds / 60
}
