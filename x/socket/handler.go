package socket

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/dangolbeeker/streamhive/core"
)

// Handler accepts websocket connections and pumps channel events to them.
type Handler interface {
	Connect(c echo.Context) error
	ResetViewers(c echo.Context) error
	CurrentConnectionCount() int64
}

type handler struct {
	relay  core.RelayService
	viewer core.ViewerService
}

// NewHandler is for wire.go
func NewHandler(relay core.RelayService, viewer core.ViewerService) Handler {
	return &handler{
		relay:  relay,
		viewer: viewer,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect upgrades the request and serves the connection until the peer goes
// away. The client joins a channel by sending a "connection_<identifier>"
// event; the first view count delivered after that doubles as the join
// acknowledgement the client waits for.
func (h *handler) Connect(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Socket.Handler.Connect")
	defer span.End()

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer ws.Close()

	var joined string
	var cancel func()
	var writerDone chan struct{}
	leave := func() {
		if cancel != nil {
			cancel()
			cancel = nil
		}
		if writerDone != nil {
			// gorilla allows one concurrent writer; the old pump must be
			// fully stopped before a new subscription starts writing
			<-writerDone
			writerDone = nil
		}
		if joined == "" {
			return
		}
		count, err := h.viewer.Leave(ctx, joined)
		if err != nil {
			h.logError(ctx, fmt.Sprintf("fail to leave channel %s", joined), err)
		} else {
			h.relay.Publish(ctx, core.ChannelEventName(core.KindViewCount, joined), count)
		}
		joined = ""
	}
	defer leave()

	for {
		var req core.Event
		if err := ws.ReadJSON(&req); err != nil {
			break
		}

		identifier, ok := core.ParseJoinEventName(req.Name)
		if !ok {
			continue
		}

		// switching channels: release the old subscription and wait for its
		// writer to exit before the new one starts
		leave()

		events, cancelSub := h.relay.Subscribe(ctx, core.ChannelEventNames(identifier)...)
		cancel = cancelSub
		joined = identifier

		done := make(chan struct{})
		writerDone = done
		go func() {
			defer close(done)
			for event := range events {
				if err := ws.WriteJSON(event); err != nil {
					break
				}
			}
		}()

		count, err := h.viewer.Join(ctx, identifier)
		if err != nil {
			h.logError(ctx, fmt.Sprintf("fail to join channel %s", identifier), err)
			continue
		}
		h.relay.Publish(ctx, core.ChannelEventName(core.KindViewCount, identifier), count)
	}
	return nil
}

// ResetViewers zeroes a channel's viewer count and broadcasts the zero.
// The ingest server calls this when a new broadcast begins.
func (h *handler) ResetViewers(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Socket.Handler.ResetViewers")
	defer span.End()

	identifier := c.Param("id")
	if err := h.viewer.Reset(ctx, identifier); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}
	h.relay.Publish(ctx, core.ChannelEventName(core.KindViewCount, identifier), int64(0))
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) CurrentConnectionCount() int64 {
	return h.viewer.Connections()
}

func (h *handler) logError(ctx context.Context, msg string, err error) {
	slog.ErrorContext(
		ctx,
		msg,
		slog.String("error", err.Error()),
		slog.String("module", "socket"),
	)
}
