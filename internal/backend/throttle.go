package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces config reloads at least interval apart. Editors tend to
// write a file several times per save; the watcher drains whatever queued up
// during the wait, so a burst costs a single reload.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next reload may run. It returns false when ctx is
// cancelled first, which lets Stop interrupt a pending reload.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	delay := time.Until(t.last.Add(t.interval))
	t.mu.Unlock()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
	return true
}
