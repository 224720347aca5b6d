// Package reaper garbage-collects expired schedule entries once an hour.
//
// The cleanup is asymmetric on purpose: user-owned entries are deleted and
// unpinned from every personal schedule, while event-stage-owned entries are
// retained as the stage's historical program. Blob cleanup applies to both
// owner kinds.
package reaper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("reaper")

// Period is the job's poll interval.
const Period = time.Hour

type service struct {
	schedule  core.ScheduleService
	profile   core.ProfileService
	storage   core.BlobStorage
	telemetry core.TelemetryService
}

// NewService is for wire.go
func NewService(schedule core.ScheduleService, profile core.ProfileService, storage core.BlobStorage, telemetry core.TelemetryService) core.ReaperService {
	return &service{
		schedule:  schedule,
		profile:   profile,
		storage:   storage,
		telemetry: telemetry,
	}
}

// Sweep processes every expired entry independently; one failure never blocks
// cleanup of the remaining items in the same tick.
func (s *service) Sweep(ctx context.Context, now time.Time) {
	ctx, span := tracer.Start(ctx, "Reaper.Service.Sweep")
	defer span.End()

	expired, err := s.schedule.ListExpired(ctx, now)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx,
			"fail to list expired scheduled streams",
			slog.String("error", err.Error()),
			slog.String("module", "reaper"),
		)
		return
	}

	for _, stream := range expired {
		if err := s.sweepOne(ctx, stream); err != nil {
			span.RecordError(err)
			slog.ErrorContext(
				ctx,
				fmt.Sprintf("fail to reap scheduled stream %s", stream.ID),
				slog.String("error", err.Error()),
				slog.String("module", "reaper"),
			)
		}
	}
}

func (s *service) sweepOne(ctx context.Context, stream core.ScheduledStream) error {
	kind, _, err := stream.Owner()
	if err != nil {
		// invariant violation: skip with a diagnostic, never coerce
		return err
	}

	// blob cleanup applies to both owner kinds and is best-effort: a failed
	// delete is reported but does not hold up record cleanup. A retained
	// record outlives its blob, so the reference is cleared once the delete
	// succeeds; a failed delete keeps the reference and retries next tick.
	if stream.HasPrerecordedVideo() {
		err := s.storage.Delete(ctx, stream.VideoBucket, stream.VideoKey)
		if err != nil {
			s.telemetry.Report(ctx, errors.Wrapf(err, "delete prerecorded video %s/%s", stream.VideoBucket, stream.VideoKey))
		} else if kind != core.OwnerUser {
			if err := s.schedule.ClearVideo(ctx, stream.ID); err != nil {
				return errors.Wrapf(err, "clear video reference of %s", stream.ID)
			}
		}
	}

	if kind != core.OwnerUser {
		// stage-owned records are kept as the event's archived program
		return nil
	}

	if err := s.schedule.Delete(ctx, stream.ID); err != nil {
		return errors.Wrapf(err, "delete scheduled stream %s", stream.ID)
	}
	if err := s.profile.UnpinScheduledStream(ctx, stream.ID); err != nil {
		return errors.Wrapf(err, "unpin scheduled stream %s", stream.ID)
	}
	return nil
}
