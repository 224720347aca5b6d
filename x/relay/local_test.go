package relay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dangolbeeker/streamhive/core"
	mock_core "github.com/dangolbeeker/streamhive/core/mock"
)

var ctx = context.Background()

func TestLocalRelayDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelemetry := mock_core.NewMockTelemetryService(ctrl)
	relay := newLocalRelay(mockTelemetry)

	first, cancelFirst := relay.Subscribe(ctx, "chatMessage_alice", "streamStarted_alice")
	defer cancelFirst()
	second, cancelSecond := relay.Subscribe(ctx, "chatMessage_alice")
	defer cancelSecond()

	relay.Publish(ctx, "chatMessage_alice", "hello")

	event := <-first
	assert.Equal(t, "chatMessage_alice", event.Name)
	assert.Equal(t, "hello", event.Payload)

	event = <-second
	assert.Equal(t, "hello", event.Payload)

	// only the matching subscription sees this one
	relay.Publish(ctx, "streamStarted_alice", nil)
	event = <-first
	assert.Equal(t, "streamStarted_alice", event.Name)
	assert.Empty(t, second)
}

func TestLocalRelayCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelemetry := mock_core.NewMockTelemetryService(ctrl)
	relay := newLocalRelay(mockTelemetry).(*localRelay)

	events, cancel := relay.Subscribe(ctx, "chatMessage_alice")
	assert.Len(t, relay.registry.channels(), 1)

	cancel()
	cancel() // idempotent

	assert.Empty(t, relay.registry.channels())

	// channel is closed, publishing afterwards touches nobody
	relay.Publish(ctx, "chatMessage_alice", "late")
	_, open := <-events
	assert.False(t, open)
}

// a subscriber that stops draining loses events and the loss is reported, but
// the publisher never blocks
func TestLocalRelayLaggingSubscriber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelemetry := mock_core.NewMockTelemetryService(ctrl)
	mockTelemetry.EXPECT().Report(gomock.Any(), gomock.Any()).Times(1)

	relay := newLocalRelay(mockTelemetry)

	events, cancel := relay.Subscribe(ctx, "chatMessage_alice")
	defer cancel()

	for i := 0; i <= subscriberBuffer; i++ {
		relay.Publish(ctx, "chatMessage_alice", i)
	}

	// the buffer holds the first events; the overflowing one was dropped
	event := <-events
	assert.Equal(t, 0, event.Payload)
	assert.Len(t, events, subscriberBuffer-1)
}

func TestNewServicePicksMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelemetry := mock_core.NewMockTelemetryService(ctrl)

	local := NewService(nil, mockTelemetry, core.Config{Server: core.Server{RelayMode: ModeLocal}})
	assert.IsType(t, &localRelay{}, local)

	fallback := NewService(nil, mockTelemetry, core.Config{})
	assert.IsType(t, &localRelay{}, fallback)
}
