package googlecalendar

import "time"

// Config параметры клиента
type Config struct {
	ClientEmail string
	PrivateKey  string // PEM, переводы строк уже раскрыты
	CalendarID  string
	Timezone    string
	Timeout     time.Duration
}

// IsComplete true, если заданы все параметры для обращения к API
func (c Config) IsComplete() bool {
	return c.ClientEmail != "" && c.PrivateKey != "" && c.CalendarID != ""
}

// Операции календаря для логов и метрик
const (
	opFreeBusy     = "freebusy"
	opCreateHold   = "create_hold"
	opListUpcoming = "list_upcoming"
)

const (
	holdSummaryPrefix = "Em Disputa — "
	holdDescription   = "Hold automático aguardando pagamento do sinal."
	statusTentative   = "tentative"
	orderByStartTime  = "startTime"
)
