package ingest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dangolbeeker/streamhive/core"
)

// Handler exposes ingest liveness over the API.
type Handler interface {
	GetLiveness(c echo.Context) error
}

type handler struct {
	service core.IngestService
}

// NewHandler is for wire.go
func NewHandler(service core.IngestService) Handler {
	return &handler{service: service}
}

// GetLiveness reports whether a stream key is currently broadcasting.
func (h *handler) GetLiveness(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Ingest.Handler.GetLiveness")
	defer span.End()

	live, err := h.service.IsLive(ctx, c.Param("key"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadGateway, echo.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": live})
}
