package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "kstudio-agenda")

	m.ObserveHTTPRequest("GET", "/freebusy", 200, 10*time.Millisecond)
	m.ObserveGatewayCall("freebusy", nil, time.Millisecond)
	m.ObserveGatewayCall("freebusy", errors.New("boom"), time.Millisecond)
	m.IncHoldCreated(true)
	m.IncCountdownStarted()
	m.IncCountdownExpired()
	m.IncGridRendered()
	m.IncGridRendered()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("kstudio-agenda", "GET", "/freebusy", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCallsTotal.WithLabelValues("kstudio-agenda", "freebusy", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCallsTotal.WithLabelValues("kstudio-agenda", "freebusy", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.holdsCreatedTotal.WithLabelValues("kstudio-agenda", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.countdownsStarted.WithLabelValues("kstudio-agenda")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.countdownsExpired.WithLabelValues("kstudio-agenda")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.gridRendersTotal.WithLabelValues("kstudio-agenda")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveGatewayCall("events", nil, time.Millisecond)
		m.IncHoldCreated(false)
		m.IncCountdownStarted()
		m.IncCountdownExpired()
		m.IncGridRendered()
	})
}
