package chatwindow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dangolbeeker/streamhive/core"
	mock_core "github.com/dangolbeeker/streamhive/core/mock"
)

var ctx = context.Background()

// one event, chat open 17:00-21:00, walked minute by minute
func TestTickTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	event := core.LiveEvent{
		ID:        "event000000000000000",
		Name:      "summer showcase",
		StartTime: day.Add(18 * time.Hour),
		EndTime:   day.Add(20 * time.Hour),
	}

	mockEvents := mock_core.NewMockLiveEventService(ctrl)
	mockEvents.EXPECT().ListActiveBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.LiveEvent{event}, nil).AnyTimes()

	var published []core.Event
	mockRelay := mock_core.NewMockRelayService(ctrl)
	mockRelay.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(ctx context.Context, name string, payload any) {
			published = append(published, core.Event{Name: name, Payload: payload})
		},
	).AnyTimes()

	s := NewService(mockEvents, mockRelay)

	// one tick per minute from 16:30 to 21:30
	for at := day.Add(16*time.Hour + 30*time.Minute); !at.After(day.Add(21*time.Hour + 30*time.Minute)); at = at.Add(Period) {
		s.Tick(ctx, at)
	}

	// open once, ten countdown alerts, close once
	assert.Len(t, published, 12)

	assert.Equal(t, core.EventChatOpened, published[0].Name)
	assert.Equal(t, event.ID, published[0].Payload)

	for i := 0; i < 10; i++ {
		alert, ok := published[1+i].Payload.(core.ChatAlert)
		if assert.True(t, ok) {
			assert.Equal(t, core.EventChatAlert, published[1+i].Name)
			assert.Equal(t, event.ID, alert.Recipient)
			assert.Equal(t, fmt.Sprintf("*** CHAT CLOSES IN %d MINUTE(S) ***", 10-i), alert.Alert)
		}
	}

	assert.Equal(t, core.EventChatClosed, published[11].Name)
	assert.Equal(t, event.ID, published[11].Payload)
}

// a second pass over the same minute publishes the same transitions again;
// only wall-clock progress moves the machine
func TestTickIsTimeDriven(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	event := core.LiveEvent{
		ID:        "event000000000000000",
		StartTime: day.Add(18 * time.Hour),
		EndTime:   day.Add(20 * time.Hour),
	}

	mockEvents := mock_core.NewMockLiveEventService(ctrl)
	mockEvents.EXPECT().ListActiveBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.LiveEvent{event}, nil).Times(2)

	mockRelay := mock_core.NewMockRelayService(ctrl)
	mockRelay.EXPECT().Publish(gomock.Any(), core.EventChatOpened, event.ID).Times(2)

	s := NewService(mockEvents, mockRelay)
	s.Tick(ctx, day.Add(17*time.Hour))
	s.Tick(ctx, day.Add(17*time.Hour))
}

// a minute strictly inside the window publishes nothing
func TestTickQuietInsideWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	event := core.LiveEvent{
		ID:        "event000000000000000",
		StartTime: day.Add(18 * time.Hour),
		EndTime:   day.Add(20 * time.Hour),
	}

	mockEvents := mock_core.NewMockLiveEventService(ctrl)
	mockEvents.EXPECT().ListActiveBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.LiveEvent{event}, nil)

	mockRelay := mock_core.NewMockRelayService(ctrl)

	s := NewService(mockEvents, mockRelay)
	s.Tick(ctx, day.Add(19*time.Hour))
}
