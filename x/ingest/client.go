// Package ingest talks to the media ingest server.
package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("ingest")

const defaultCacheTTL int32 = 10 // seconds

type service struct {
	client   *http.Client
	mc       *memcache.Client
	baseAddr string
	cacheTTL int32
}

// NewService is for wire.go. mc may be nil; liveness then always hits the
// ingest server directly.
func NewService(mc *memcache.Client, config core.Config) core.IngestService {
	ttl := config.Ingest.CacheTTLSeconds
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &service{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		mc:       mc,
		baseAddr: strings.TrimSuffix(config.Ingest.BaseAddr, "/"),
		cacheTTL: ttl,
	}
}

// IsLive reports whether the ingest server currently receives a broadcast for
// the stream key. Results are cached briefly so a page of viewers does not
// hammer the ingest server.
func (s *service) IsLive(ctx context.Context, streamKey string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ingest.Service.IsLive")
	defer span.End()

	cacheKey := "live:" + streamKey
	if s.mc != nil {
		if item, err := s.mc.Get(cacheKey); err == nil {
			return string(item.Value) == "1", nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseAddr+"/streams/live/"+streamKey, nil)
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "build liveness request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "query ingest server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := errors.Errorf("ingest server returned %d for %s", resp.StatusCode, streamKey)
		span.RecordError(err)
		return false, err
	}

	var live bool
	if err := json.NewDecoder(resp.Body).Decode(&live); err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "decode liveness response")
	}

	if s.mc != nil {
		value := []byte("0")
		if live {
			value = []byte("1")
		}
		s.mc.Set(&memcache.Item{Key: cacheKey, Value: value, Expiration: s.cacheTTL})
	}
	return live, nil
}
