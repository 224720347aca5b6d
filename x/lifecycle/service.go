// Package lifecycle projects scheduled streams onto their owner's broadcast
// metadata. It runs every minute so that when the ingest layer first sees the
// owner's key go live, the right title, genre and category already display.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("lifecycle")

// Period is the job's poll interval.
const Period = time.Minute

type service struct {
	schedule core.ScheduleService
	profile  core.ProfileService
}

// NewService is for wire.go
func NewService(schedule core.ScheduleService, profile core.ProfileService) core.LifecycleService {
	return &service{
		schedule: schedule,
		profile:  profile,
	}
}

// Advance pre-fills StreamInfo for every schedule entry whose window contains
// now. Window containment keeps the tick idempotent: re-running it against an
// unchanged store rewrites the same values. One bad entry never aborts the
// rest of the tick.
func (s *service) Advance(ctx context.Context, now time.Time) {
	ctx, span := tracer.Start(ctx, "Lifecycle.Service.Advance")
	defer span.End()

	streams, err := s.schedule.ListInWindow(ctx, now)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx,
			"fail to list scheduled streams",
			slog.String("error", err.Error()),
			slog.String("module", "lifecycle"),
		)
		return
	}

	for _, stream := range streams {
		if err := s.advanceOne(ctx, stream); err != nil {
			span.RecordError(err)
			slog.ErrorContext(
				ctx,
				fmt.Sprintf("fail to pre-fill stream info for %s", stream.ID),
				slog.String("error", err.Error()),
				slog.String("module", "lifecycle"),
			)
		}
	}
}

func (s *service) advanceOne(ctx context.Context, stream core.ScheduledStream) error {
	kind, ownerID, err := stream.Owner()
	if err != nil {
		// invariant violation: skip with a diagnostic, never coerce
		return err
	}

	switch kind {
	case core.OwnerUser:
		return s.profile.PrefillUserStreamInfo(ctx, ownerID, stream.Profile())
	case core.OwnerEventStage:
		// stages go through load-modify-save, not a field update
		stage, err := s.profile.GetEventStage(ctx, ownerID)
		if err != nil {
			return errors.Wrapf(err, "load event stage %s", ownerID)
		}
		info := stream.Profile()
		stage.StreamInfo.Title = info.Title
		stage.StreamInfo.Genre = info.Genre
		stage.StreamInfo.Category = info.Category
		stage.StreamInfo.Tags = info.Tags
		return s.profile.UpdateEventStage(ctx, stage)
	}
	return nil
}
