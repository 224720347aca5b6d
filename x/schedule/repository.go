package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dangolbeeker/streamhive/core"
)

// Repository is the scheduled-stream store access
type Repository struct {
	db *gorm.DB
}

// NewRepository is for wire.go
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListInWindow returns entries whose [StartTime, EndTime) contains at.
func (r *Repository) ListInWindow(ctx context.Context, at time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Repository.ListInWindow")
	defer span.End()

	var streams []core.ScheduledStream
	err := r.db.WithContext(ctx).
		Where("start_time <= ? AND end_time > ?", at, at).
		Find(&streams).Error
	return streams, err
}

// ListExpired returns entries whose EndTime has passed.
func (r *Repository) ListExpired(ctx context.Context, at time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Repository.ListExpired")
	defer span.End()

	var streams []core.ScheduledStream
	err := r.db.WithContext(ctx).
		Where("end_time < ?", at).
		Find(&streams).Error
	return streams, err
}

// ListUserOwnedCreatedBetween returns user-owned entries created in
// (since, until].
func (r *Repository) ListUserOwnedCreatedBetween(ctx context.Context, since, until time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Repository.ListUserOwnedCreatedBetween")
	defer span.End()

	var streams []core.ScheduledStream
	err := r.db.WithContext(ctx).
		Where("user_id IS NOT NULL AND c_date > ? AND c_date <= ?", since, until).
		Find(&streams).Error
	return streams, err
}

// ListStartingBetween returns entries starting in [from, until), regardless
// of owner kind (pinned streams may be event-stage-owned).
func (r *Repository) ListStartingBetween(ctx context.Context, from, until time.Time) ([]core.ScheduledStream, error) {
	ctx, span := tracer.Start(ctx, "Schedule.Repository.ListStartingBetween")
	defer span.End()

	var streams []core.ScheduledStream
	err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", from, until).
		Find(&streams).Error
	return streams, err
}

// ClearVideo drops the blob reference from a retained record so the next
// sweep sees nothing left to delete.
func (r *Repository) ClearVideo(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Schedule.Repository.ClearVideo")
	defer span.End()

	return r.db.WithContext(ctx).
		Model(&core.ScheduledStream{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"video_bucket": "",
			"video_key":    "",
		}).Error
}

// Delete removes a scheduled stream record.
func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Schedule.Repository.Delete")
	defer span.End()

	return r.db.WithContext(ctx).Delete(&core.ScheduledStream{}, "id = ?", id).Error
}
