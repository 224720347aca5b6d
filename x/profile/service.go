// Package profile serves the User, EventStage and Subscription collections
// for the recurring jobs. Account CRUD lives in the excluded route layer.
package profile

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("profile")

type service struct {
	repo *Repository
}

// NewService is for wire.go
func NewService(repo *Repository) core.ProfileService {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.GetUser")
	defer span.End()

	return s.repo.GetUser(ctx, id)
}

func (s *service) PrefillUserStreamInfo(ctx context.Context, userID string, profile core.StreamProfile) error {
	ctx, span := tracer.Start(ctx, "Profile.Service.PrefillUserStreamInfo")
	defer span.End()

	return s.repo.PrefillUserStreamInfo(ctx, userID, profile)
}

func (s *service) GetEventStage(ctx context.Context, id string) (core.EventStage, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.GetEventStage")
	defer span.End()

	return s.repo.GetEventStage(ctx, id)
}

func (s *service) UpdateEventStage(ctx context.Context, stage core.EventStage) error {
	ctx, span := tracer.Start(ctx, "Profile.Service.UpdateEventStage")
	defer span.End()

	return s.repo.UpdateEventStage(ctx, stage)
}

func (s *service) ListSubscribers(ctx context.Context, userID string) ([]core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.ListSubscribers")
	defer span.End()

	return s.repo.ListSubscribers(ctx, userID)
}

func (s *service) ListEventSubscribers(ctx context.Context, eventID string) ([]core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.ListEventSubscribers")
	defer span.End()

	return s.repo.ListEventSubscribers(ctx, eventID)
}

func (s *service) ListSubscriptionsCreatedBetween(ctx context.Context, since, until time.Time) ([]core.Subscription, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.ListSubscriptionsCreatedBetween")
	defer span.End()

	return s.repo.ListSubscriptionsCreatedBetween(ctx, since, until)
}

func (s *service) ListPinnedUsers(ctx context.Context, streamID string) ([]core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.ListPinnedUsers")
	defer span.End()

	return s.repo.ListPinnedUsers(ctx, streamID)
}

func (s *service) UnpinScheduledStream(ctx context.Context, streamID string) error {
	ctx, span := tracer.Start(ctx, "Profile.Service.UnpinScheduledStream")
	defer span.End()

	return s.repo.UnpinScheduledStream(ctx, streamID)
}
