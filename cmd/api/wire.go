//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dangolbeeker/streamhive/core"
	"github.com/dangolbeeker/streamhive/x/agent"
	"github.com/dangolbeeker/streamhive/x/chatwindow"
	"github.com/dangolbeeker/streamhive/x/ingest"
	"github.com/dangolbeeker/streamhive/x/lifecycle"
	"github.com/dangolbeeker/streamhive/x/liveevent"
	"github.com/dangolbeeker/streamhive/x/notify"
	"github.com/dangolbeeker/streamhive/x/profile"
	"github.com/dangolbeeker/streamhive/x/reaper"
	"github.com/dangolbeeker/streamhive/x/schedule"
	"github.com/dangolbeeker/streamhive/x/socket"
)

var scheduleProvider = wire.NewSet(schedule.NewService, schedule.NewRepository)
var profileProvider = wire.NewSet(profile.NewService, profile.NewRepository)
var liveeventProvider = wire.NewSet(liveevent.NewService, liveevent.NewRepository)

var agentProvider = wire.NewSet(
	agent.NewAgent,
	lifecycle.NewService,
	chatwindow.NewService,
	reaper.NewService,
	reaper.NewS3Storage,
	notify.NewService,
	notify.NewMailer,
	scheduleProvider,
	profileProvider,
	liveeventProvider,
)

func SetupAgent(db *gorm.DB, relay core.RelayService, telemetry core.TelemetryService, config core.Config) core.AgentService {
	wire.Build(agentProvider)
	return nil
}

func SetupSocketHandler(rdb *redis.Client, relay core.RelayService) socket.Handler {
	wire.Build(socket.NewHandler, socket.NewViewerService)
	return nil
}

func SetupIngestHandler(mc *memcache.Client, config core.Config) ingest.Handler {
	wire.Build(ingest.NewHandler, ingest.NewService)
	return nil
}
