package googlecalendar

import "errors"

var (
	// ErrNotConfigured возвращается при первом вызове, если не заданы учетные данные или календарь
	ErrNotConfigured = errors.New("googlecalendar client: credentials or calendar id not configured")

	// ErrGateway возвращается при ошибке удаленного сервиса (auth, сеть, квоты)
	ErrGateway = errors.New("googlecalendar client: gateway error")
)
