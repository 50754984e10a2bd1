// Package keepalive pings the store on a fixed interval during a daily window
// so the hosting platform does not put it to sleep.
package keepalive

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const DefaultStopTimeout = 4 * time.Second

type Pinger interface {
	RenderTask(ctx context.Context) error
}

type KeepAlive struct {
	pinger   Pinger
	window   Window
	interval time.Duration
	lg       *zap.SugaredLogger

	now      func() time.Time
	newTimer func(d time.Duration) (<-chan time.Time, func() bool)

	ctx      context.Context
	cancel   context.CancelFunc
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

func New(pinger Pinger, window Window, interval time.Duration, lg *zap.SugaredLogger) *KeepAlive {
	ctx, cancel := context.WithCancel(context.Background())

	return &KeepAlive{
		pinger:   pinger,
		window:   window,
		interval: interval,
		lg:       lg,
		now:      time.Now,
		newTimer: func(d time.Duration) (<-chan time.Time, func() bool) {
			t := time.NewTimer(d)
			return t.C, t.Stop
		},
		ctx:      ctx,
		cancel:   cancel,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start - запускает цикл в отдельной горутине
func (k *KeepAlive) Start() {
	if k.started.Swap(true) {
		return
	}
	go k.run()
}

func (k *KeepAlive) run() {
	defer close(k.done)

	delay := time.Duration(0)
	for {
		c, stop := k.newTimer(delay)
		select {
		case <-c:
		case <-k.stopChan:
			stop()
			return
		}

		now := k.now()
		if !k.window.Contains(now) {
			delay = k.window.NextOpen(now).Sub(now)
			k.lg.Infof("keep-alive: outside window, sleeping %s", delay.Round(time.Second))
			continue
		}

		k.ping()
		delay = k.interval
	}
}

func (k *KeepAlive) ping() {
	start := k.now()
	if err := k.pinger.RenderTask(k.ctx); err != nil {
		k.lg.Errorf("keep-alive ping failed: %v", err)
		return
	}
	k.lg.Infof("keep-alive ping ok in %s", k.now().Sub(start))
}

// Stop - останавливает цикл; если пинг не завершился за timeout, он отменяется
func (k *KeepAlive) Stop(timeout time.Duration) {
	k.stopOnce.Do(func() {
		close(k.stopChan)
	})
	if !k.started.Load() {
		k.cancel()
		return
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-k.done:
		k.lg.Info("keep-alive stopped")
	case <-timer.C:
		k.lg.Warn("keep-alive: force stop after timeout")
		k.cancel()
		<-k.done
	}
	k.cancel()
}
