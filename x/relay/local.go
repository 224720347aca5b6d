package relay

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/dangolbeeker/streamhive/core"
)

// registry is an in-process publish-subscribe table. Delivery happens before
// Publish returns; a full subscriber buffer drops the event for that
// subscriber and reports it instead of blocking the publishing path.
type registry struct {
	mu        sync.RWMutex
	subs      map[string]map[int]chan core.Event
	next      int
	telemetry core.TelemetryService
}

func newRegistry(telemetry core.TelemetryService) *registry {
	return &registry{
		subs:      make(map[string]map[int]chan core.Event),
		telemetry: telemetry,
	}
}

func (r *registry) dispatch(ctx context.Context, event core.Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, ch := range r.subs[event.Name] {
		select {
		case ch <- event:
		default:
			r.telemetry.Report(ctx, errors.Errorf("local relay: subscriber %d lagging on %s, event dropped", id, event.Name))
		}
	}
}

func (r *registry) subscribe(names ...string) (<-chan core.Event, func()) {
	ch := make(chan core.Event, subscriberBuffer)

	r.mu.Lock()
	id := r.next
	r.next++
	for _, name := range names {
		if r.subs[name] == nil {
			r.subs[name] = make(map[int]chan core.Event)
		}
		r.subs[name][id] = ch
	}
	r.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			for _, name := range names {
				delete(r.subs[name], id)
				if len(r.subs[name]) == 0 {
					delete(r.subs, name)
				}
			}
			r.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (r *registry) channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.subs))
	for name := range r.subs {
		names = append(names, name)
	}
	return names
}

type localRelay struct {
	registry *registry
}

func newLocalRelay(telemetry core.TelemetryService) core.RelayService {
	return &localRelay{registry: newRegistry(telemetry)}
}

// Publish hands the payload to every in-process subscriber of name.
func (r *localRelay) Publish(ctx context.Context, name string, payload any) {
	ctx, span := tracer.Start(ctx, "Relay.Local.Publish")
	defer span.End()

	slog.DebugContext(
		ctx,
		fmt.Sprintf("publish %s", name),
		slog.String("module", "relay"),
	)

	r.registry.dispatch(ctx, core.Event{Name: name, Payload: payload})
}

func (r *localRelay) Subscribe(ctx context.Context, names ...string) (<-chan core.Event, func()) {
	_, span := tracer.Start(ctx, "Relay.Local.Subscribe")
	defer span.End()

	return r.registry.subscribe(names...)
}
