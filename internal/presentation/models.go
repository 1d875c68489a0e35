package presentation

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/internal/scheduling"
)

// Options зависимости и параметры доски
type Options struct {
	Catalog     *domain.Catalog
	Classifier  scheduling.Classifier // по умолчанию ArithmeticClassifier
	StepMinutes int                   // по умолчанию domain.DefaultStepMinutes
	HoldSeconds int                   // по умолчанию domain.DefaultHoldSeconds
	Clock       clockwork.Clock       // по умолчанию реальные часы
	Location    *time.Location        // таймзона отображения, по умолчанию UTC
	Logger      Logger
	Metrics     Metrics
}

// Dispute окно холда, зарезервированное за слотом до ответа календаря
type Dispute struct {
	Key              domain.SlotKey
	Service          string
	Strategic        bool
	Start            time.Time
	End              time.Time
	ExpiresAt        time.Time
	CountdownSeconds int

	timer *slotTimer
}

// Hold возвращает холд для создания в календаре
func (d Dispute) Hold() domain.Hold {
	return domain.Hold{
		Start:     d.Start,
		End:       d.End,
		Service:   d.Service,
		ExpiresAt: d.ExpiresAt,
		Strategic: d.Strategic,
	}
}
