package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dangolbeeker/streamhive/core"
)

var ctx = context.Background()

func TestIsLive(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/streams/live/sk-live":
			w.Write([]byte("true"))
		case "/streams/live/sk-idle":
			w.Write([]byte("false"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := NewService(nil, core.Config{Ingest: core.Ingest{BaseAddr: server.URL}})

	live, err := s.IsLive(ctx, "sk-live")
	assert.NoError(t, err)
	assert.True(t, live)

	live, err = s.IsLive(ctx, "sk-idle")
	assert.NoError(t, err)
	assert.False(t, live)

	_, err = s.IsLive(ctx, "sk-unknown")
	assert.Error(t, err)

	// no cache configured, every lookup reaches the server
	assert.Equal(t, int64(3), hits.Load())
}

func TestIsLiveTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/streams/live/sk-live", r.URL.Path)
		w.Write([]byte("true"))
	}))
	defer server.Close()

	s := NewService(nil, core.Config{Ingest: core.Ingest{BaseAddr: server.URL + "/"}})

	live, err := s.IsLive(ctx, "sk-live")
	assert.NoError(t, err)
	assert.True(t, live)
}
