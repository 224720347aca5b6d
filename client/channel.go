// Package client implements the viewer side of the real-time channel
// protocol: connect, join a channel, wait for the join acknowledgement, then
// dispatch channel events to the caller's handlers.
package client

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dangolbeeker/streamhive/core"
)

// State is the channel connection state.
type State int32

const (
	// Disconnected means no usable socket exists.
	Disconnected State = iota
	// Connecting means a dial is in flight.
	Connecting
	// AwaitingAck means the join was sent and the first view count event,
	// which doubles as the acknowledgement, has not arrived yet.
	AwaitingAck
	// Confirmed means the server owns our join and events flow.
	Confirmed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case AwaitingAck:
		return "awaitingAck"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Handlers receives channel events. Nil members are skipped. Handlers run on
// the channel's read loop and must not block.
type Handlers struct {
	OnChatMessage       func(payload any)
	OnStreamStarted     func()
	OnStreamEnded       func()
	OnStreamInfoUpdated func(payload any)
	OnViewCount         func(count int64)

	// OnPlaying fires one playlist grace period after OnStreamStarted, the
	// moment the player should refetch stream info and switch to playing.
	// A stream ending inside the grace period cancels it.
	OnPlaying func()
}

const (
	defaultAckTimeout    = 5 * time.Second
	defaultRetryInterval = 2 * time.Second
	defaultPlayGrace     = 10 * time.Second
)

// Channel is one client-side channel connection. Zero value is not usable;
// construct with NewChannel. Timing fields may be tuned before Connect.
type Channel struct {
	// AckTimeout bounds the wait for the join acknowledgement. On expiry the
	// whole connection is torn down and redialed once; resending the join on
	// the same socket would not help, the server that owns it never saw us.
	AckTimeout time.Duration
	// RetryInterval is the pause after a failed dial.
	RetryInterval time.Duration
	// PlayGrace is the delay between streamStarted and OnPlaying, covering
	// the ingest server's playlist warmup.
	PlayGrace time.Duration
	// Dialer defaults to websocket.DefaultDialer.
	Dialer *websocket.Dialer

	endpoint   string
	identifier string
	handlers   Handlers

	mu         sync.Mutex
	conn       *websocket.Conn
	graceTimer *time.Timer

	state atomic.Int32
	dials atomic.Int64

	done      chan struct{}
	closeOnce sync.Once
}

// NewChannel prepares a channel for the identifier (a username or an
// event-stage id). Nothing happens until Connect.
func NewChannel(endpoint, identifier string, handlers Handlers) *Channel {
	return &Channel{
		AckTimeout:    defaultAckTimeout,
		RetryInterval: defaultRetryInterval,
		PlayGrace:     defaultPlayGrace,
		Dialer:        websocket.DefaultDialer,
		endpoint:      endpoint,
		identifier:    identifier,
		handlers:      handlers,
		done:          make(chan struct{}),
	}
}

// State reports the current connection state.
func (c *Channel) State() State {
	return State(c.state.Load())
}

// Dials reports how many dial attempts were made so far.
func (c *Channel) Dials() int64 {
	return c.dials.Load()
}

// Connect starts the connection loop. The channel reconnects on its own until
// Close is called.
func (c *Channel) Connect() {
	go c.run()
}

// Close tears the channel down. No handler fires after Close returns.
func (c *Channel) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopGraceLocked()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.state.Store(int32(Disconnected))
}

func (c *Channel) run() {
	for {
		if c.closed() {
			return
		}

		c.state.Store(int32(Connecting))
		c.dials.Add(1)

		conn, _, err := c.Dialer.Dial(c.endpoint, nil)
		if err != nil {
			c.logError("fail to dial", err)
			c.state.Store(int32(Disconnected))
			c.sleep(c.RetryInterval)
			continue
		}

		c.mu.Lock()
		if c.closed() {
			c.mu.Unlock()
			conn.Close()
			return
		}
		c.conn = conn
		c.mu.Unlock()

		if err := conn.WriteJSON(core.Event{Name: core.JoinEventName(c.identifier)}); err != nil {
			c.logError("fail to send join", err)
			c.teardown()
			c.sleep(c.RetryInterval)
			continue
		}
		c.state.Store(int32(AwaitingAck))

		acked := make(chan struct{})
		readDone := make(chan struct{})
		go c.readPump(conn, acked, readDone)

		ackTimer := time.NewTimer(c.AckTimeout)
		select {
		case <-c.done:
			ackTimer.Stop()
			c.teardown()
			<-readDone
			return
		case <-readDone:
			ackTimer.Stop()
			c.teardown()
			continue
		case <-ackTimer.C:
			// the server holding our socket never applied the join; only a
			// fresh connection fixes that
			c.logError("join not acknowledged", fmt.Errorf("no view count within %s", c.AckTimeout))
			c.teardown()
			<-readDone
			continue
		case <-acked:
			ackTimer.Stop()
			c.state.Store(int32(Confirmed))
		}

		select {
		case <-c.done:
			c.teardown()
			<-readDone
			return
		case <-readDone:
			c.teardown()
		}
	}
}

func (c *Channel) readPump(conn *websocket.Conn, acked chan struct{}, readDone chan struct{}) {
	defer close(readDone)

	ackedOnce := false
	for {
		var event core.Event
		if err := conn.ReadJSON(&event); err != nil {
			return
		}
		if c.closed() {
			return
		}
		c.dispatch(event, &ackedOnce, acked)
	}
}

func (c *Channel) dispatch(event core.Event, ackedOnce *bool, acked chan struct{}) {
	switch event.Name {
	case core.ChannelEventName(core.KindViewCount, c.identifier):
		if !*ackedOnce {
			*ackedOnce = true
			close(acked)
		}
		if c.handlers.OnViewCount != nil {
			c.handlers.OnViewCount(asCount(event.Payload))
		}
	case core.ChannelEventName(core.KindChatMessage, c.identifier):
		if c.handlers.OnChatMessage != nil {
			c.handlers.OnChatMessage(event.Payload)
		}
	case core.ChannelEventName(core.KindStreamStarted, c.identifier):
		if c.handlers.OnStreamStarted != nil {
			c.handlers.OnStreamStarted()
		}
		c.scheduleGrace()
	case core.ChannelEventName(core.KindStreamEnded, c.identifier):
		c.mu.Lock()
		c.stopGraceLocked()
		c.mu.Unlock()
		if c.handlers.OnStreamEnded != nil {
			c.handlers.OnStreamEnded()
		}
	case core.ChannelEventName(core.KindStreamInfoUpdated, c.identifier):
		if c.handlers.OnStreamInfoUpdated != nil {
			c.handlers.OnStreamInfoUpdated(event.Payload)
		}
	}
}

func (c *Channel) scheduleGrace() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopGraceLocked()
	c.graceTimer = time.AfterFunc(c.PlayGrace, func() {
		if c.closed() {
			return
		}
		if c.handlers.OnPlaying != nil {
			c.handlers.OnPlaying()
		}
	})
}

func (c *Channel) stopGraceLocked() {
	if c.graceTimer != nil {
		c.graceTimer.Stop()
		c.graceTimer = nil
	}
}

func (c *Channel) teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopGraceLocked()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.state.Store(int32(Disconnected))
}

func (c *Channel) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Channel) sleep(d time.Duration) {
	select {
	case <-c.done:
	case <-time.After(d):
	}
}

func (c *Channel) logError(msg string, err error) {
	slog.Error(
		msg,
		slog.String("error", err.Error()),
		slog.String("module", "client"),
	)
}

// asCount tolerates the JSON number decode of the view count payload.
func asCount(payload any) int64 {
	switch v := payload.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
