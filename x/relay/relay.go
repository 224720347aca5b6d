// Package relay is the event delivery primitive every other component
// publishes through. It exposes one Publish contract over two transports so
// callers stay oblivious to deployment topology: a process-local registry for
// single-process deployments, and a redis pub/sub backbone when several
// workers sit behind one endpoint.
package relay

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("relay")

const (
	ModeLocal = "local"
	ModeRedis = "redis"

	// subscriber channels are buffered; a consumer that falls this far behind
	// starts losing events, which is reported but never blocks a publisher.
	subscriberBuffer = 64
)

// NewService selects the relay implementation from configuration.
func NewService(rdb *redis.Client, telemetry core.TelemetryService, config core.Config) core.RelayService {
	mode := config.Server.RelayMode
	if mode == "" {
		mode = ModeLocal
	}

	slog.Info(
		fmt.Sprintf("relay mode: %s", mode),
		slog.String("module", "relay"),
	)

	switch mode {
	case ModeRedis:
		return newRedisRelay(rdb, telemetry)
	default:
		return newLocalRelay(telemetry)
	}
}
