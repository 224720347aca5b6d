// Package agent runs the scheduled background jobs
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
	"github.com/dangolbeeker/streamhive/x/chatwindow"
	"github.com/dangolbeeker/streamhive/x/lifecycle"
	"github.com/dangolbeeker/streamhive/x/notify"
	"github.com/dangolbeeker/streamhive/x/reaper"
)

var tracer = otel.Tracer("agent")

type agent struct {
	lifecycle  core.LifecycleService
	chatwindow core.ChatWindowService
	reaper     core.ReaperService
	notify     core.NotifyService
}

// NewAgent creates a new agent
func NewAgent(
	lifecycle core.LifecycleService,
	chatwindow core.ChatWindowService,
	reaper core.ReaperService,
	notify core.NotifyService,
) core.AgentService {
	return &agent{
		lifecycle,
		chatwindow,
		reaper,
		notify,
	}
}

// Boot starts every job on its own ticker. Jobs receive the tick's wall-clock
// time so their window math never drifts from the schedule that fired them.
func (a *agent) Boot() {
	slog.Info("agent start!")

	go runEvery("Advance", lifecycle.Period, a.lifecycle.Advance)
	go runEvery("TickChatWindow", chatwindow.Period, a.chatwindow.Tick)
	go runEvery("Sweep", reaper.Period, a.reaper.Sweep)
	go runEvery("DispatchNewSubscribers", notify.HourlyPeriod, a.notify.DispatchNewSubscribers)
	go runEvery("DispatchCreatedStreams", notify.HourlyPeriod, a.notify.DispatchCreatedStreams)
	go runEvery("DispatchImminentStreams", notify.ImminentPeriod, a.notify.DispatchImminentStreams)
}

// runEvery drives one job. A panicking tick is logged and the ticker keeps
// going; a dead timer would silently stop every future dispatch.
func runEvery(name string, period time.Duration, tick func(ctx context.Context, now time.Time)) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for now := range ticker.C {
		func() {
			ctx, span := tracer.Start(context.Background(), "Agent.Boot."+name)
			defer span.End()
			defer func() {
				if r := recover(); r != nil {
					slog.Error(
						fmt.Sprintf("job %s panicked: %v", name, r),
						slog.String("module", "agent"),
					)
				}
			}()
			tick(ctx, now)
		}()
	}
}
