package googlecalendar

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для учета вызовов календаря
type MetricsRecorder interface {
	ObserveGatewayCall(operation string, err error, duration time.Duration)
}
