// Package schedule reads and garbage-collects ScheduledStream records.
// Creation and edits happen in the excluded HTTP route layer; the jobs in
// this core only consume what that layer wrote.
package schedule

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("schedule")

type service struct {
	repo *Repository
}

// NewService is for wire.go
func NewService(repo *Repository) core.ScheduleService {
	return &service{repo: repo}
}

func (s *service) ListInWindow(ctx context.Context, at time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Service.ListInWindow")
	defer span.End()

	return s.repo.ListInWindow(ctx, at)
}

func (s *service) ListExpired(ctx context.Context, at time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Service.ListExpired")
	defer span.End()

	return s.repo.ListExpired(ctx, at)
}

func (s *service) ListUserOwnedCreatedBetween(ctx context.Context, since, until time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Service.ListUserOwnedCreatedBetween")
	defer span.End()

	return s.repo.ListUserOwnedCreatedBetween(ctx, since, until)
}

func (s *service) ListStartingBetween(ctx context.Context, from, until time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Service.ListStartingBetween")
	defer span.End()

	return s.repo.ListStartingBetween(ctx, from, until)
}

func (s *service) ClearVideo(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Schedule.Service.ClearVideo")
	defer span.End()

	return s.repo.ClearVideo(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Schedule.Service.Delete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}
