// Package socket bridges the relay onto client websocket connections and
// keeps the shared per-channel viewer counts.
package socket

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("socket")

const viewerKeyPrefix = "viewers:"

type viewerService struct {
	rdb *redis.Client

	// connections counts sockets attached to this instance only; the redis
	// counters hold the cluster-wide viewer totals
	connections atomic.Int64
}

// NewViewerService is for wire.go
func NewViewerService(rdb *redis.Client) core.ViewerService {
	return &viewerService{rdb: rdb}
}

func (s *viewerService) Join(ctx context.Context, identifier string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Socket.Viewer.Join")
	defer span.End()

	s.connections.Add(1)

	count, err := s.rdb.Incr(ctx, viewerKeyPrefix+identifier).Result()
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrapf(err, "increment viewers of %s", identifier)
	}
	return count, nil
}

func (s *viewerService) Leave(ctx context.Context, identifier string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Socket.Viewer.Leave")
	defer span.End()

	s.connections.Add(-1)

	count, err := s.rdb.Decr(ctx, viewerKeyPrefix+identifier).Result()
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrapf(err, "decrement viewers of %s", identifier)
	}
	if count < 0 {
		// a reset raced with this leave; pin back to zero
		s.rdb.Set(ctx, viewerKeyPrefix+identifier, 0, 0)
		count = 0
	}
	return count, nil
}

// Reset zeroes a channel's counter. Called when a new broadcast begins so
// stale counts from a previous session never leak into the new one.
func (s *viewerService) Reset(ctx context.Context, identifier string) error {
	ctx, span := tracer.Start(ctx, "Socket.Viewer.Reset")
	defer span.End()

	err := s.rdb.Set(ctx, viewerKeyPrefix+identifier, 0, 0).Err()
	if err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "reset viewers of %s", identifier)
	}
	return nil
}

func (s *viewerService) Count(ctx context.Context, identifier string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Socket.Viewer.Count")
	defer span.End()

	count, err := s.rdb.Get(ctx, viewerKeyPrefix+identifier).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		span.RecordError(err)
		return 0, errors.Wrapf(err, "get viewers of %s", identifier)
	}
	return count, nil
}

func (s *viewerService) Connections() int64 {
	return s.connections.Load()
}
