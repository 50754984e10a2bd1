package keepalive

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, day, hour, minute int) time.Time {
	return time.Date(2025, time.January, day, hour, minute, 0, 0, loc)
}

func TestWindow_Contains(t *testing.T) {
	loc := kolkata(t)
	day := Window{From: 8, To: 22, Location: loc}
	night := Window{From: 22, To: 6, Location: loc}
	always := Window{From: 0, To: 0, Location: loc}

	tests := []struct {
		name   string
		window Window
		t      time.Time
		want   bool
	}{
		{name: "before open", window: day, t: at(loc, 15, 7, 59), want: false},
		{name: "at open", window: day, t: at(loc, 15, 8, 0), want: true},
		{name: "last minute", window: day, t: at(loc, 15, 21, 59), want: true},
		{name: "at close", window: day, t: at(loc, 15, 22, 0), want: false},
		{name: "other zone", window: day, t: time.Date(2025, 1, 15, 3, 0, 0, 0, time.UTC), want: true},
		{name: "wrap late", window: night, t: at(loc, 15, 23, 0), want: true},
		{name: "wrap early", window: night, t: at(loc, 15, 3, 0), want: true},
		{name: "wrap midday", window: night, t: at(loc, 15, 12, 0), want: false},
		{name: "always", window: always, t: at(loc, 15, 4, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Contains(tt.t))
		})
	}
}

func TestWindow_NextOpen(t *testing.T) {
	loc := kolkata(t)
	w := Window{From: 8, To: 22, Location: loc}

	inside := at(loc, 15, 10, 0)
	assert.Equal(t, inside, w.NextOpen(inside))

	assert.True(t, at(loc, 15, 8, 0).Equal(w.NextOpen(at(loc, 15, 5, 30))))
	assert.True(t, at(loc, 16, 8, 0).Equal(w.NextOpen(at(loc, 15, 23, 0))))
	assert.True(t, at(loc, 1, 8, 0).Equal(Window{From: 8, To: 22, Location: loc}.NextOpen(time.Date(2024, 12, 31, 22, 30, 0, 0, loc))))
}

func TestWindow_Status(t *testing.T) {
	loc := kolkata(t)
	w := Window{From: 8, To: 22, Location: loc}

	awake := w.Status(at(loc, 15, 10, 0))
	assert.True(t, awake.Success)
	assert.True(t, awake.Active)
	assert.Equal(t, "PrintBee server is awake until 22:00", awake.Message)
	assert.Equal(t, "2025-01-15T10:00:00+05:30", awake.CheckedAt)

	resting := w.Status(at(loc, 15, 23, 0))
	assert.False(t, resting.Active)
	assert.Equal(t, "PrintBee server is resting, back at 08:00", resting.Message)

	always := Window{Location: loc}.Status(at(loc, 15, 3, 0))
	assert.True(t, always.Active)
	assert.Equal(t, "PrintBee server is awake", always.Message)
}

func TestWindow_NilLocationIsUTC(t *testing.T) {
	w := Window{From: 8, To: 22}
	assert.True(t, w.Contains(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)))
}

type fakePinger struct {
	calls atomic.Int32
	err   error
}

func (p *fakePinger) RenderTask(context.Context) error {
	p.calls.Add(1)
	return p.err
}

// stepped replaces the loop timers: each requested delay is reported on the
// first channel and the timer fires when the test sends on the second.
func stepped(k *KeepAlive) (<-chan time.Duration, chan<- time.Time) {
	delays := make(chan time.Duration, 16)
	ticks := make(chan time.Time)
	k.newTimer = func(d time.Duration) (<-chan time.Time, func() bool) {
		delays <- d
		return ticks, func() bool { return true }
	}
	return delays, ticks
}

func TestKeepAlive_PingsInsideWindow(t *testing.T) {
	loc := kolkata(t)
	pinger := &fakePinger{}
	k := New(pinger, Window{From: 8, To: 22, Location: loc}, 10*time.Minute, zap.NewNop().Sugar())
	k.now = func() time.Time { return at(loc, 15, 10, 0) }
	delays, ticks := stepped(k)

	k.Start()
	assert.Equal(t, time.Duration(0), <-delays)

	ticks <- time.Time{}
	assert.Equal(t, 10*time.Minute, <-delays)
	assert.Equal(t, int32(1), pinger.calls.Load())

	ticks <- time.Time{}
	assert.Equal(t, 10*time.Minute, <-delays)
	assert.Equal(t, int32(2), pinger.calls.Load())

	k.Stop(time.Second)
	assert.Equal(t, int32(2), pinger.calls.Load())
}

func TestKeepAlive_SleepsOutsideWindow(t *testing.T) {
	loc := kolkata(t)
	pinger := &fakePinger{}
	k := New(pinger, Window{From: 8, To: 22, Location: loc}, 10*time.Minute, zap.NewNop().Sugar())
	k.now = func() time.Time { return at(loc, 15, 23, 0) }
	delays, ticks := stepped(k)

	k.Start()
	assert.Equal(t, time.Duration(0), <-delays)

	ticks <- time.Time{}
	assert.Equal(t, 9*time.Hour, <-delays)

	k.Stop(time.Second)
	assert.Equal(t, int32(0), pinger.calls.Load())
}

func TestKeepAlive_FailuresAreNotFatal(t *testing.T) {
	pinger := &fakePinger{err: errors.New("store asleep")}
	k := New(pinger, Window{}, time.Minute, zap.NewNop().Sugar())
	delays, ticks := stepped(k)

	k.Start()
	<-delays

	ticks <- time.Time{}
	assert.Equal(t, time.Minute, <-delays)
	ticks <- time.Time{}
	assert.Equal(t, time.Minute, <-delays)

	k.Stop(time.Second)
	assert.Equal(t, int32(2), pinger.calls.Load())
}

type blockingPinger struct {
	started chan struct{}
}

func (p *blockingPinger) RenderTask(ctx context.Context) error {
	close(p.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestKeepAlive_StopCancelsHangingPing(t *testing.T) {
	pinger := &blockingPinger{started: make(chan struct{})}
	k := New(pinger, Window{}, time.Hour, zap.NewNop().Sugar())

	k.Start()
	<-pinger.started

	stopped := make(chan struct{})
	go func() {
		k.Stop(20 * time.Millisecond)
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("keep-alive did not stop")
	}
}

func TestKeepAlive_StopWithoutStart(t *testing.T) {
	k := New(&fakePinger{}, Window{}, time.Minute, zap.NewNop().Sugar())
	k.Stop(time.Second)
	k.Stop(time.Second)
}
