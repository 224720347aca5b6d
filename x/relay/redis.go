package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/dangolbeeker/streamhive/core"
)

// redisRelay is the clustered transport: the message is handed to redis
// pub/sub, which rebroadcasts to every worker's subscription. A delivery
// failure never raises to the caller; it is reported to telemetry and
// republished on this instance's own local registry as a relayError event,
// so internal failures are observable like any other event.
type redisRelay struct {
	rdb       *redis.Client
	local     *registry
	telemetry core.TelemetryService
}

func newRedisRelay(rdb *redis.Client, telemetry core.TelemetryService) core.RelayService {
	return &redisRelay{
		rdb:       rdb,
		local:     newRegistry(telemetry),
		telemetry: telemetry,
	}
}

type relayFailure struct {
	Name  string `json:"eventName"`
	Error string `json:"error"`
}

func (r *redisRelay) Publish(ctx context.Context, name string, payload any) {
	ctx, span := tracer.Start(ctx, "Relay.Redis.Publish")
	defer span.End()

	message, err := json.Marshal(core.Event{Name: name, Payload: payload})
	if err != nil {
		span.RecordError(err)
		r.deliveryFailed(ctx, name, err)
		return
	}

	err = r.rdb.Publish(ctx, name, string(message)).Err()
	if err != nil {
		span.RecordError(err)
		r.deliveryFailed(ctx, name, err)
	}
}

// deliveryFailed must not crash a request-handling path: best-effort
// telemetry plus a local relayError event, nothing more.
func (r *redisRelay) deliveryFailed(ctx context.Context, name string, err error) {
	slog.ErrorContext(
		ctx,
		fmt.Sprintf("fail to relay %s", name),
		slog.String("error", err.Error()),
		slog.String("module", "relay"),
	)
	r.telemetry.Report(ctx, errors.Wrapf(err, "relay delivery failed for %s", name))
	r.local.dispatch(ctx, core.Event{
		Name:    core.EventRelayError,
		Payload: relayFailure{Name: name, Error: err.Error()},
	})
}

// Subscribe merges the redis fan-out with the instance's local registry so
// that relayError events raised here are delivered alongside remote ones.
func (r *redisRelay) Subscribe(ctx context.Context, names ...string) (<-chan core.Event, func()) {
	ctx, span := tracer.Start(ctx, "Relay.Redis.Subscribe")
	defer span.End()

	localCh, localCancel := r.local.subscribe(names...)

	pubsub := r.rdb.Subscribe(ctx, names...)
	psch := pubsub.Channel()

	out := make(chan core.Event, subscriberBuffer)
	done := make(chan struct{})

	go func() {
		// consumers range over the channel; closing it on cancel matches the
		// local registry's contract
		defer close(out)
		for {
			select {
			case <-done:
				return
			case msg, ok := <-psch:
				if !ok {
					return
				}
				var event core.Event
				err := json.Unmarshal([]byte(msg.Payload), &event)
				if err != nil {
					slog.Error(
						"fail to unmarshal redis message",
						slog.String("error", err.Error()),
						slog.String("module", "relay"),
					)
					continue
				}
				select {
				case out <- event:
				case <-done:
					return
				}
			case event, ok := <-localCh:
				if !ok {
					return
				}
				select {
				case out <- event:
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			pubsub.Close()
			localCancel()
		})
	}

	return out, cancel
}
