package countdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_TickFiresOnce(t *testing.T) {
	var fired int32
	c := New(5, func() { atomic.AddInt32(&fired, 1) })

	for i := 4; i >= 0; i-- {
		assert.Equal(t, i, c.Tick())
	}
	assert.True(t, c.Expired())
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))

	// дальнейшие тики не уводят в минус и не вызывают callback повторно
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, c.Tick())
	}
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestCountdown_CancelPreventsExpiry(t *testing.T) {
	var fired int32
	c := New(2, func() { atomic.AddInt32(&fired, 1) })

	c.Tick()
	c.Cancel()
	c.Tick()
	c.Tick()

	assert.Equal(t, 1, c.Remaining())
	assert.False(t, c.Expired())
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestCountdown_NegativeSecondsClampToZero(t *testing.T) {
	c := New(-10, nil)
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdown_RunWithFakeClock(t *testing.T) {
	clock := clockwork.NewFakeClock()

	var fired int32
	c := New(5, func() { atomic.AddInt32(&fired, 1) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Run(context.Background(), clock)
	}()

	for want := 4; want >= 0; want-- {
		clock.BlockUntil(1)
		clock.Advance(time.Second)
		expected := want
		require.Eventually(t, func() bool { return c.Remaining() == expected },
			time.Second, time.Millisecond, "remaining should be %d", expected)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after expiry")
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdown_RunZeroFiresImmediately(t *testing.T) {
	clock := clockwork.NewFakeClock()

	var fired int32
	c := New(0, func() { atomic.AddInt32(&fired, 1) })
	c.Run(context.Background(), clock)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestCountdown_StartStop(t *testing.T) {
	clock := clockwork.NewFakeClock()

	var fired int32
	c := New(3, func() { atomic.AddInt32(&fired, 1) })
	stop := c.Start(context.Background(), clock)

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return c.Remaining() == 2 }, time.Second, time.Millisecond)

	stop()
	clock.Advance(5 * time.Second)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 2, c.Remaining())
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestCountdown_RunStopsOnContextCancel(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(10, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Run(ctx, clock)
	}()

	clock.BlockUntil(1)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancel")
	}
	assert.Equal(t, 10, c.Remaining())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "30:00", FormatClock(1800))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "01:01", FormatClock(61))
	assert.Equal(t, "00:00", FormatClock(-3))
}
