package get_free_busy

import (
	"time"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// Request диапазон запроса занятости
type Request struct {
	TimeMin time.Time
	TimeMax time.Time
}

// Response занятые интервалы календаря
type Response struct {
	Busy []domain.BusyInterval
}
