package presentation

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета событий доски
type Metrics interface {
	IncCountdownStarted()
	IncCountdownExpired()
	IncGridRendered()
}

type noopMetrics struct{}

func (noopMetrics) IncCountdownStarted() {}
func (noopMetrics) IncCountdownExpired() {}
func (noopMetrics) IncGridRendered()     {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
