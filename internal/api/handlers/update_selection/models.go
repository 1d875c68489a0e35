package update_selection

import (
	"time"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// UpdateSelectionRequest HTTP request model. Пустые поля не меняют текущий выбор.
type UpdateSelectionRequest struct {
	Service     string `json:"service,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	HoldMinutes int    `json:"holdMinutes,omitempty"`
}

// ParseDate парсит дату, пустая строка дает нулевое время
func (r *UpdateSelectionRequest) ParseDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, r.Date)
}
