package scheduling

import (
	"fmt"

	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// GenerateSlots возвращает времена начала слотов внутри сессии.
// Слоты идут с шагом stepMinutes от начала сессии; слот попадает в результат,
// только если start+duration <= sessionEnd, т.е. не пересекает границу сессии (обеденный перерыв).
// Если услуга длиннее сессии, результат пустой.
func GenerateSlots(sessionStart, sessionEnd types.TimeString, durationMinutes, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, stepMinutes)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	start := sessionStart.Minutes()
	end := sessionEnd.Minutes()

	slots := make([]types.TimeString, 0)
	for t := start; t+durationMinutes <= end; t += stepMinutes {
		slots = append(slots, types.FromMinutes(t))
	}

	return slots, nil
}
