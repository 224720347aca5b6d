// Package telemetry is the best-effort error reporting channel. Reports are
// logged and, when redis is available, published for external collectors; a
// failed report is itself swallowed so telemetry can never take down the
// path that called it.
package telemetry

import (
	"context"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("telemetry")

// ErrorChannel is the redis channel external collectors listen on.
const ErrorChannel = "streamhive:telemetry:error"

type service struct {
	rdb      *redis.Client
	reported atomic.Int64
}

// NewService creates the telemetry service. rdb may be nil in single-process
// deployments; reports then only go to the log.
func NewService(rdb *redis.Client) core.TelemetryService {
	return &service{rdb: rdb}
}

func (s *service) Report(ctx context.Context, err error) {
	ctx, span := tracer.Start(ctx, "Telemetry.Service.Report")
	defer span.End()

	if err == nil {
		return
	}

	span.RecordError(err)
	s.reported.Add(1)

	logError(ctx, err)

	if s.rdb == nil {
		return
	}
	// best effort: a telemetry failure is not worth more than a log line
	pubErr := s.rdb.Publish(ctx, ErrorChannel, err.Error()).Err()
	if pubErr != nil {
		logError(ctx, pubErr)
	}
}

func (s *service) Metrics() map[string]int64 {
	return map[string]int64{
		"reportedErrors": s.reported.Load(),
	}
}
