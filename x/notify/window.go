package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Window is a time interval sized to a job's poll period. Because the width
// equals the period, every record is captured on exactly one tick, which
// gives send-exactly-once semantics without any persisted "already notified"
// flag. Correctness depends on the width matching the period precisely.
type Window struct {
	Since time.Time
	Until time.Time
}

// Trailing builds the (now-period, now] window used by creation-time jobs.
func Trailing(now time.Time, period time.Duration) Window {
	return Window{Since: now.Add(-period), Until: now}
}

// Lead builds the [now+lead, now+lead+period) window used by the imminent
// streams job.
func Lead(now time.Time, lead, period time.Duration) Window {
	return Window{Since: now.Add(lead), Until: now.Add(lead + period)}
}

// a tick may drift a little without opening a gap in coverage; anything past
// this is a real delay worth surfacing
const delaySlack = 5 * time.Second

// tickGuard detects ticks delayed beyond the window width. Records falling in
// the gap were never selected, so the miss is surfaced instead of silently
// dropped.
type tickGuard struct {
	mu   sync.Mutex
	last time.Time
}

func (g *tickGuard) check(ctx context.Context, job string, now time.Time, period time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() {
		gap := now.Sub(g.last)
		if gap > period+delaySlack {
			slog.WarnContext(
				ctx,
				fmt.Sprintf("%s tick delayed %s past its %s window; notifications in the gap were missed", job, gap-period, period),
				slog.String("module", "notify"),
			)
		}
	}
	g.last = now
}
