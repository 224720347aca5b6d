//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"
)

// RelayService is the cross-process event delivery primitive. Publish is
// fire-and-forget: callers never observe a delivery failure, in any mode.
type RelayService interface {
	Publish(ctx context.Context, name string, payload any)
	Subscribe(ctx context.Context, names ...string) (<-chan Event, func())
}

// TelemetryService is the best-effort error reporting channel.
type TelemetryService interface {
	Report(ctx context.Context, err error)
	Metrics() map[string]int64
}

type ScheduleService interface {
	ListInWindow(ctx context.Context, at time.Time) ([]ScheduledStream, error)
	ListExpired(ctx context.Context, at time.Time) ([]ScheduledStream, error)
	ListUserOwnedCreatedBetween(ctx context.Context, since, until time.Time) ([]ScheduledStream, error)
	ListStartingBetween(ctx context.Context, from, until time.Time) ([]ScheduledStream, error)
	Delete(ctx context.Context, id string) error
	ClearVideo(ctx context.Context, id string) error
}

type ProfileService interface {
	GetUser(ctx context.Context, id string) (User, error)
	PrefillUserStreamInfo(ctx context.Context, userID string, profile StreamProfile) error
	GetEventStage(ctx context.Context, id string) (EventStage, error)
	UpdateEventStage(ctx context.Context, stage EventStage) error
	ListSubscribers(ctx context.Context, userID string) ([]User, error)
	ListEventSubscribers(ctx context.Context, eventID string) ([]User, error)
	ListSubscriptionsCreatedBetween(ctx context.Context, since, until time.Time) ([]Subscription, error)
	ListPinnedUsers(ctx context.Context, streamID string) ([]User, error)
	UnpinScheduledStream(ctx context.Context, streamID string) error
}

type LiveEventService interface {
	// ListActiveBetween returns events whose [StartTime, EndTime] overlaps
	// [from, to].
	ListActiveBetween(ctx context.Context, from, to time.Time) ([]LiveEvent, error)
}

// LifecycleService projects scheduled streams onto their owner's StreamInfo.
type LifecycleService interface {
	Advance(ctx context.Context, now time.Time)
}

// ChatWindowService drives the per-event chat open/countdown/close machine.
type ChatWindowService interface {
	Tick(ctx context.Context, now time.Time)
}

// ReaperService garbage-collects expired schedule entries.
type ReaperService interface {
	Sweep(ctx context.Context, now time.Time)
}

// NotifyService runs the time-windowed notification dispatch jobs.
type NotifyService interface {
	DispatchNewSubscribers(ctx context.Context, now time.Time)
	DispatchCreatedStreams(ctx context.Context, now time.Time)
	DispatchImminentStreams(ctx context.Context, now time.Time)
}

// EmailItem is one row of a notification batch.
type EmailItem struct {
	Title  string
	Detail string
	URL    string
}

// EmailSender delivers one batch per recipient per dispatch tick.
// Implementations are never called with an empty batch.
type EmailSender interface {
	Notify(ctx context.Context, recipient User, subject string, items []EmailItem) error
}

// BlobStorage deletes stored media by bucket and key.
type BlobStorage interface {
	Delete(ctx context.Context, bucket, key string) error
}

// IngestService queries the media ingest server for stream liveness.
type IngestService interface {
	IsLive(ctx context.Context, streamKey string) (bool, error)
}

// ViewerService tracks per-channel viewer counts, reset on each new broadcast.
type ViewerService interface {
	Join(ctx context.Context, identifier string) (int64, error)
	Leave(ctx context.Context, identifier string) (int64, error)
	Reset(ctx context.Context, identifier string) error
	Count(ctx context.Context, identifier string) (int64, error)
	Connections() int64
}

type AgentService interface {
	Boot()
}
