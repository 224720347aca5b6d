// Package liveevent reads the Event collection for the chat window job.
package liveevent

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("liveevent")

type service struct {
	repo *Repository
}

// NewService is for wire.go
func NewService(repo *Repository) core.LiveEventService {
	return &service{repo: repo}
}

func (s *service) ListActiveBetween(ctx context.Context, from, to time.Time) ([]core.LiveEvent, error) {
	ctx, span := tracer.Start(ctx, "LiveEvent.Service.ListActiveBetween")
	defer span.End()

	return s.repo.ListActiveBetween(ctx, from, to)
}
