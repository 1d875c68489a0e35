package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// Overlay набор стратегически заблокированных времен начала
type Overlay interface {
	Contains(t types.TimeString) bool
}

// Classifier определяет статус слота.
// Точка расширения: реальная реализация должна смотреть в записи бронирований и холдов
// на дату date, а не на цифры времени.
type Classifier interface {
	Classify(ctx context.Context, date time.Time, start types.TimeString, overlay Overlay) domain.SlotStatus
}

// ArithmeticClassifier детерминированная заглушка вместо реальной проверки занятости
type ArithmeticClassifier struct{}

// Classify реализует Classifier, дата не учитывается
func (ArithmeticClassifier) Classify(_ context.Context, _ time.Time, start types.TimeString, overlay Overlay) domain.SlotStatus {
	return Classify(start, overlay)
}

// Classify возвращает статус слота по времени начала.
// Стратегическая блокировка имеет приоритет. Иначе HH:MM читается как число HHMM:
// кратно 6 -> FULL, кратно 4 -> DISPUTED, иначе AVAILABLE.
func Classify(start types.TimeString, overlay Overlay) domain.SlotStatus {
	if overlay != nil && overlay.Contains(start) {
		return domain.SlotDisputed
	}

	n := start.Digits()
	switch {
	case n%6 == 0:
		return domain.SlotFull
	case n%4 == 0:
		return domain.SlotDisputed
	default:
		return domain.SlotAvailable
	}
}
