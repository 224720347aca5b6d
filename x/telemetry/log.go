package telemetry

import (
	"context"
	"log/slog"
)

func logError(ctx context.Context, err error) {
	slog.ErrorContext(
		ctx,
		"error reported",
		slog.String("error", err.Error()),
		slog.String("module", "telemetry"),
	)
}
