package profile

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/dangolbeeker/streamhive/core"
)

// Repository is user/stage/subscription store access
type Repository struct {
	db *gorm.DB
}

// NewRepository is for wire.go
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUser returns a user by ID
func (r *Repository) GetUser(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.GetUser")
	defer span.End()

	var user core.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, err
}

// PrefillUserStreamInfo overwrites only the projected metadata fields of the
// embedded StreamInfo; key, view count and start time stay untouched. Single
// atomic field update, unlike the event-stage path.
func (r *Repository) PrefillUserStreamInfo(ctx context.Context, userID string, profile core.StreamProfile) error {
	ctx, span := tracer.Start(ctx, "Profile.Repository.PrefillUserStreamInfo")
	defer span.End()

	return r.db.WithContext(ctx).
		Model(&core.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"stream_title":    profile.Title,
			"stream_genre":    profile.Genre,
			"stream_category": profile.Category,
			"stream_tags":     pq.StringArray(profile.Tags),
		}).Error
}

// GetEventStage returns an event stage by ID
func (r *Repository) GetEventStage(ctx context.Context, id string) (core.EventStage, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.GetEventStage")
	defer span.End()

	var stage core.EventStage
	err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error
	return stage, err
}

// UpdateEventStage persists a whole stage. Stages are load-modify-save on
// purpose: their embedded StreamInfo is edited as a unit.
func (r *Repository) UpdateEventStage(ctx context.Context, stage core.EventStage) error {
	ctx, span := tracer.Start(ctx, "Profile.Repository.UpdateEventStage")
	defer span.End()

	return r.db.WithContext(ctx).Save(&stage).Error
}

// ListSubscribers returns every user subscribed to the given user.
func (r *Repository) ListSubscribers(ctx context.Context, userID string) ([]core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.ListSubscribers")
	defer span.End()

	var users []core.User
	err := r.db.WithContext(ctx).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
		Where("subscriptions.user_id = ?", userID).
		Find(&users).Error
	return users, err
}

// ListEventSubscribers returns every user subscribed to the given event.
func (r *Repository) ListEventSubscribers(ctx context.Context, eventID string) ([]core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.ListEventSubscribers")
	defer span.End()

	var users []core.User
	err := r.db.WithContext(ctx).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
		Where("subscriptions.event_id = ?", eventID).
		Find(&users).Error
	return users, err
}

// ListSubscriptionsCreatedBetween returns subscription edges created in
// (since, until].
func (r *Repository) ListSubscriptionsCreatedBetween(ctx context.Context, since, until time.Time) ([]core.Subscription, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.ListSubscriptionsCreatedBetween")
	defer span.End()

	var subscriptions []core.Subscription
	err := r.db.WithContext(ctx).
		Where("c_date > ? AND c_date <= ?", since, until).
		Find(&subscriptions).Error
	return subscriptions, err
}

// ListPinnedUsers returns users who pinned the stream without subscribing.
func (r *Repository) ListPinnedUsers(ctx context.Context, streamID string) ([]core.User, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.ListPinnedUsers")
	defer span.End()

	var users []core.User
	err := r.db.WithContext(ctx).
		Where("? = ANY(non_subscribed_scheduled_streams)", streamID).
		Find(&users).Error
	return users, err
}

// UnpinScheduledStream removes the id from every user's pinned list in one
// bulk update, keyed on the deleted id.
func (r *Repository) UnpinScheduledStream(ctx context.Context, streamID string) error {
	ctx, span := tracer.Start(ctx, "Profile.Repository.UnpinScheduledStream")
	defer span.End()

	return r.db.WithContext(ctx).
		Model(&core.User{}).
		Where("? = ANY(non_subscribed_scheduled_streams)", streamID).
		Update("non_subscribed_scheduled_streams", gorm.Expr("array_remove(non_subscribed_scheduled_streams, ?)", streamID)).
		Error
}
