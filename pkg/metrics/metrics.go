// Package metrics собирает Prometheus-метрики сервиса.
// Все методы безопасно вызывать на nil *Metrics (метрики выключены).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	gatewayCallsTotal   *prometheus.CounterVec
	gatewayCallDuration *prometheus.HistogramVec
	holdsCreatedTotal   *prometheus.CounterVec
	countdownsStarted   *prometheus.CounterVec
	countdownsExpired   *prometheus.CounterVec
	gridRendersTotal    *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном регистре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		gatewayCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_gateway_calls_total",
			Help: "Calls to the external calendar provider",
		}, []string{"service", "operation", "result"}),
		gatewayCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calendar_gateway_call_duration_seconds",
			Help:    "Latency of calls to the external calendar provider",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		holdsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "holds_created_total",
			Help: "Tentative hold events created in the calendar",
		}, []string{"service", "strategic"}),
		countdownsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dispute_countdowns_started_total",
			Help: "Dispute countdowns started",
		}, []string{"service"}),
		countdownsExpired: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dispute_countdowns_expired_total",
			Help: "Dispute countdowns that reached zero",
		}, []string{"service"}),
		gridRendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_grid_renders_total",
			Help: "Slot grid recomputations",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest записывает запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveGatewayCall записывает вызов календаря
func (m *Metrics) ObserveGatewayCall(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.gatewayCallsTotal.WithLabelValues(m.serviceName, operation, result).Inc()
	m.gatewayCallDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// IncHoldCreated увеличивает счетчик созданных холдов
func (m *Metrics) IncHoldCreated(strategic bool) {
	if m == nil {
		return
	}
	m.holdsCreatedTotal.WithLabelValues(m.serviceName, strconv.FormatBool(strategic)).Inc()
}

// IncCountdownStarted увеличивает счетчик запущенных отсчетов
func (m *Metrics) IncCountdownStarted() {
	if m == nil {
		return
	}
	m.countdownsStarted.WithLabelValues(m.serviceName).Inc()
}

// IncCountdownExpired увеличивает счетчик истекших отсчетов
func (m *Metrics) IncCountdownExpired() {
	if m == nil {
		return
	}
	m.countdownsExpired.WithLabelValues(m.serviceName).Inc()
}

// IncGridRendered увеличивает счетчик пересчетов сетки
func (m *Metrics) IncGridRendered() {
	if m == nil {
		return
	}
	m.gridRendersTotal.WithLabelValues(m.serviceName).Inc()
}
