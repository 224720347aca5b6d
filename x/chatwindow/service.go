// Package chatwindow drives each live event's chat room through
// Closed -> Open -> Closed. The state is a pure function of the current time
// and the event's stored bounds, so a dropped relay message heals itself on
// the next tick and nothing needs to be persisted between ticks.
package chatwindow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("chatwindow")

const (
	// Period is the job's poll interval. Alert granularity relies on it:
	// one tick per minute means each countdown value is visited exactly once.
	Period = time.Minute

	// chat opens one hour before the event starts and closes one hour after
	// it ends
	margin = time.Hour

	// countdown alerts cover the final ten minutes
	alertSpan = 10 * time.Minute
)

type service struct {
	events core.LiveEventService
	relay  core.RelayService
}

// NewService is for wire.go
func NewService(events core.LiveEventService, relay core.RelayService) core.ChatWindowService {
	return &service{
		events: events,
		relay:  relay,
	}
}

// Tick evaluates every event near its chat window. Boundary decisions compare
// the guard at now with the guard one period earlier, so a tick straddling a
// boundary fires its transition exactly once.
func (s *service) Tick(ctx context.Context, now time.Time) {
	ctx, span := tracer.Start(ctx, "ChatWindow.Service.Tick")
	defer span.End()

	events, err := s.events.ListActiveBetween(ctx, now.Add(-(margin + Period)), now.Add(margin))
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx,
			"fail to list live events",
			slog.String("error", err.Error()),
			slog.String("module", "chatwindow"),
		)
		return
	}

	for _, event := range events {
		s.evaluate(ctx, event, now)
	}
}

func (s *service) evaluate(ctx context.Context, event core.LiveEvent, now time.Time) {
	opensAt := event.StartTime.Add(-margin)
	closesAt := event.EndTime.Add(margin)

	within := func(t time.Time) bool {
		return !t.Before(opensAt) && t.Before(closesAt)
	}

	openNow := within(now)
	openPrev := within(now.Add(-Period))

	if openNow && !openPrev {
		slog.InfoContext(
			ctx,
			fmt.Sprintf("chat opened for event %s", event.ID),
			slog.String("module", "chatwindow"),
		)
		s.relay.Publish(ctx, core.EventChatOpened, event.ID)
	}

	if !openNow && openPrev {
		slog.InfoContext(
			ctx,
			fmt.Sprintf("chat closed for event %s", event.ID),
			slog.String("module", "chatwindow"),
		)
		s.relay.Publish(ctx, core.EventChatClosed, event.ID)
	}

	if openNow {
		remaining := closesAt.Sub(now)
		if remaining <= alertSpan {
			n := int((remaining + time.Minute - 1) / time.Minute)
			if n >= 1 {
				s.relay.Publish(ctx, core.EventChatAlert, core.ChatAlert{
					Recipient: event.ID,
					Alert:     fmt.Sprintf("*** CHAT CLOSES IN %d MINUTE(S) ***", n),
				})
			}
		}
	}
}
