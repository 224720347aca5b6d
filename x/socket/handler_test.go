package socket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dangolbeeker/streamhive/core"
	mock_core "github.com/dangolbeeker/streamhive/core/mock"
	"github.com/dangolbeeker/streamhive/x/relay"
	"github.com/dangolbeeker/streamhive/x/telemetry"
)

var ctx = context.Background()

func TestHandlerConnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relayService := relay.NewService(nil, telemetry.NewService(nil), core.Config{})

	left := make(chan string, 1)
	mockViewer := mock_core.NewMockViewerService(ctrl)
	mockViewer.EXPECT().Join(gomock.Any(), "alice").Return(int64(5), nil)
	mockViewer.EXPECT().Leave(gomock.Any(), "alice").DoAndReturn(
		func(ctx context.Context, identifier string) (int64, error) {
			left <- identifier
			return int64(4), nil
		},
	)

	h := NewHandler(relayService, mockViewer)

	e := echo.New()
	e.GET("/socket", h.Connect)
	server := httptest.NewServer(e)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/socket", nil)
	assert.NoError(t, err)

	err = conn.WriteJSON(core.Event{Name: core.JoinEventName("alice")})
	assert.NoError(t, err)

	// joining publishes the current count; its arrival is the client's ack
	var ack core.Event
	conn.SetReadDeadline(time.Now().Add(time.Second))
	err = conn.ReadJSON(&ack)
	if assert.NoError(t, err) {
		assert.Equal(t, "liveStreamViewCount_alice", ack.Name)
		assert.Equal(t, float64(5), ack.Payload)
	}

	// channel events published while joined reach the socket
	relayService.Publish(ctx, core.ChannelEventName(core.KindChatMessage, "alice"), "hello")

	var chat core.Event
	conn.SetReadDeadline(time.Now().Add(time.Second))
	err = conn.ReadJSON(&chat)
	if assert.NoError(t, err) {
		assert.Equal(t, "chatMessage_alice", chat.Name)
		assert.Equal(t, "hello", chat.Payload)
	}

	// events for other channels never leak in
	relayService.Publish(ctx, core.ChannelEventName(core.KindChatMessage, "bob"), "psst")

	conn.Close()

	select {
	case identifier := <-left:
		assert.Equal(t, "alice", identifier)
	case <-time.After(time.Second):
		t.Fatal("leave never happened")
	}
}

// switching channels tears the old pump down first; only the new channel's
// events reach the socket afterwards
func TestHandlerSwitchChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relayService := relay.NewService(nil, telemetry.NewService(nil), core.Config{})

	left := make(chan string, 2)
	mockViewer := mock_core.NewMockViewerService(ctrl)
	mockViewer.EXPECT().Join(gomock.Any(), "alice").Return(int64(5), nil)
	mockViewer.EXPECT().Join(gomock.Any(), "bob").Return(int64(2), nil)
	mockViewer.EXPECT().Leave(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, identifier string) (int64, error) {
			left <- identifier
			return int64(0), nil
		},
	).Times(2)

	h := NewHandler(relayService, mockViewer)

	e := echo.New()
	e.GET("/socket", h.Connect)
	server := httptest.NewServer(e)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/socket", nil)
	assert.NoError(t, err)

	err = conn.WriteJSON(core.Event{Name: core.JoinEventName("alice")})
	assert.NoError(t, err)

	var ack core.Event
	conn.SetReadDeadline(time.Now().Add(time.Second))
	err = conn.ReadJSON(&ack)
	if assert.NoError(t, err) {
		assert.Equal(t, "liveStreamViewCount_alice", ack.Name)
	}

	err = conn.WriteJSON(core.Event{Name: core.JoinEventName("bob")})
	assert.NoError(t, err)

	// the old channel is left before the new join acks
	select {
	case identifier := <-left:
		assert.Equal(t, "alice", identifier)
	case <-time.After(time.Second):
		t.Fatal("leave never happened")
	}

	conn.SetReadDeadline(time.Now().Add(time.Second))
	err = conn.ReadJSON(&ack)
	if assert.NoError(t, err) {
		assert.Equal(t, "liveStreamViewCount_bob", ack.Name)
		assert.Equal(t, float64(2), ack.Payload)
	}

	// the old subscription is gone, only bob's events arrive
	relayService.Publish(ctx, core.ChannelEventName(core.KindChatMessage, "alice"), "stale")
	relayService.Publish(ctx, core.ChannelEventName(core.KindChatMessage, "bob"), "fresh")

	var chat core.Event
	conn.SetReadDeadline(time.Now().Add(time.Second))
	err = conn.ReadJSON(&chat)
	if assert.NoError(t, err) {
		assert.Equal(t, "chatMessage_bob", chat.Name)
		assert.Equal(t, "fresh", chat.Payload)
	}

	conn.Close()

	select {
	case identifier := <-left:
		assert.Equal(t, "bob", identifier)
	case <-time.After(time.Second):
		t.Fatal("leave never happened")
	}
}

func TestHandlerIgnoresNonJoinMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relayService := relay.NewService(nil, telemetry.NewService(nil), core.Config{})
	mockViewer := mock_core.NewMockViewerService(ctrl)

	h := NewHandler(relayService, mockViewer)

	e := echo.New()
	e.GET("/socket", h.Connect)
	server := httptest.NewServer(e)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/socket", nil)
	assert.NoError(t, err)
	defer conn.Close()

	err = conn.WriteJSON(core.Event{Name: "chatMessage_alice", Payload: "not a join"})
	assert.NoError(t, err)

	// no subscription, no viewer activity
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var event core.Event
	err = conn.ReadJSON(&event)
	assert.Error(t, err)
}
