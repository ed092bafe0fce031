package nominatim

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle_FirstCallIsImmediate(t *testing.T) {
	fc := clockwork.NewFakeClock()
	th := NewThrottle(time.Second, fc)

	require.NoError(t, th.Wait(context.Background()))
}

func TestThrottle_SecondCallWaitsFullInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	th := NewThrottle(time.Second, fc)

	require.NoError(t, th.Wait(context.Background()))
	firstStart := fc.Now()

	done := make(chan time.Time, 1)
	go func() {
		_ = th.Wait(context.Background())
		done <- fc.Now()
	}()

	// The second caller must be parked on the fake clock.
	require.NoError(t, fc.BlockUntilContext(context.Background(), 1))

	select {
	case <-done:
		t.Fatal("second call proceeded before the interval elapsed")
	case <-time.After(50 * time.Millisecond):
	}

	fc.Advance(time.Second)
	secondStart := <-done

	assert.GreaterOrEqual(t, secondStart.Sub(firstStart), time.Second,
		"external call starts must be at least one interval apart")
}

func TestThrottle_NoWaitAfterIdleInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	th := NewThrottle(time.Second, fc)

	require.NoError(t, th.Wait(context.Background()))
	fc.Advance(2 * time.Second)

	done := make(chan error, 1)
	go func() { done <- th.Wait(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("call after an idle interval should not block")
	}
}

func TestThrottle_CallersAdmittedInArrivalOrder(t *testing.T) {
	fc := clockwork.NewFakeClock()
	th := NewThrottle(time.Second, fc)

	require.NoError(t, th.Wait(context.Background()))

	starts := make(chan time.Time, 2)
	go func() {
		_ = th.Wait(context.Background())
		starts <- fc.Now()
	}()
	require.NoError(t, fc.BlockUntilContext(context.Background(), 1))

	go func() {
		_ = th.Wait(context.Background())
		starts <- fc.Now()
	}()
	require.NoError(t, fc.BlockUntilContext(context.Background(), 2))

	fc.Advance(time.Second)
	second := <-starts
	fc.Advance(time.Second)
	third := <-starts

	assert.GreaterOrEqual(t, third.Sub(second), time.Second)
}

func TestThrottle_ContextCancelled(t *testing.T) {
	fc := clockwork.NewFakeClock()
	th := NewThrottle(time.Second, fc)

	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- th.Wait(ctx) }()

	require.NoError(t, fc.BlockUntilContext(context.Background(), 1))
	cancel()

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestThrottle_ZeroIntervalNeverBlocks(t *testing.T) {
	th := NewThrottle(0, nil)
	for range 5 {
		require.NoError(t, th.Wait(context.Background()))
	}
}
