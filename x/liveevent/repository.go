package liveevent

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dangolbeeker/streamhive/core"
)

// Repository is live-event store access
type Repository struct {
	db *gorm.DB
}

// NewRepository is for wire.go
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActiveBetween returns events whose [StartTime, EndTime] overlaps
// [from, to].
func (r *Repository) ListActiveBetween(ctx context.Context, from, to time.Time) ([]core.LiveEvent, error) {
	ctx, span := tracer.Start(ctx, "LiveEvent.Repository.ListActiveBetween")
	defer span.End()

	var events []core.LiveEvent
	err := r.db.WithContext(ctx).
		Where("start_time <= ? AND end_time >= ?", to, from).
		Find(&events).Error
	return events, err
}
