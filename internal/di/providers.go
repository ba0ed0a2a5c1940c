package di

import (
	"math/rand"
	"time"

	"SquadPulse/internal/domain/models"
	"SquadPulse/internal/domain/repository"
	domsvc "SquadPulse/internal/domain/service"
	"SquadPulse/internal/handler/api"
	internalrepo "SquadPulse/internal/repository"
	"SquadPulse/internal/service/cache"
	"SquadPulse/internal/service/telemetry"
	"SquadPulse/internal/services/explain"
	"SquadPulse/internal/services/features"
	"SquadPulse/internal/services/plan"
	"SquadPulse/internal/services/risk"
	"SquadPulse/internal/stream"
	"SquadPulse/internal/usecase"
	"SquadPulse/pkg/config"
	xhttp "SquadPulse/pkg/http"
	applogger "SquadPulse/pkg/logger"
	"SquadPulse/pkg/metrics"
	"SquadPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRand creates the rng shared by the generator and feature builder.
// Seed 0 keeps the source-faithful nondeterministic mode.
func ProvideRand(cfg *config.Config) *rand.Rand {
	seed := cfg.Monitor.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ProvideTelemetrySource creates the synthetic GPS generator.
func ProvideTelemetrySource(cfg *config.Config, rng *rand.Rand) repository.TelemetrySource {
	return telemetry.New(cfg.Monitor.SquadSize, cfg.Monitor.Seed, rng)
}

// ProvideFeatureBuilder creates the feature builder sharing the cycle rng.
func ProvideFeatureBuilder(rng *rand.Rand) *features.Builder {
	return features.NewBuilder(rng)
}

// ProvideRiskScorer creates the risk engine.
func ProvideRiskScorer() domsvc.RiskScorer {
	return risk.NewEngine()
}

// ProvideSessionPlanner creates the session planner.
func ProvideSessionPlanner() domsvc.SessionPlanner {
	return plan.NewPlanner()
}

// ProvideDriverSummarizer creates the explainability summarizer.
func ProvideDriverSummarizer() domsvc.DriverSummarizer {
	return explain.NewSummarizer()
}

// ProvideCache creates the snapshot bytes cache from config.
func ProvideCache(cfg *config.Config) cache.BytesCache {
	if cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideSnapshotStore creates the latest-snapshot repository.
func ProvideSnapshotStore(c cache.BytesCache, cfg *config.Config) repository.SnapshotStore {
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		// Snapshots stay valid until the next cycle overwrites them.
		ttl = 2 * cfg.Monitor.RefreshInterval
	}
	return internalrepo.NewSnapshotRepository(c, ttl)
}

// ProvideHub creates the websocket broadcast hub.
func ProvideHub(logger *applogger.Logger, m repository.Metrics) *stream.Hub {
	return stream.NewHub(logger, m)
}

// ProvideMonitor wires the full per-cycle pipeline.
func ProvideMonitor(
	source repository.TelemetrySource,
	builder *features.Builder,
	scorer domsvc.RiskScorer,
	planner domsvc.SessionPlanner,
	explainer domsvc.DriverSummarizer,
	store repository.SnapshotStore,
	m repository.Metrics,
	logger *applogger.Logger,
	hub *stream.Hub,
	cfg *config.Config,
) *usecase.SquadMonitor {
	policy, _ := models.ParsePolicy(cfg.Monitor.Policy)
	initial := models.MatchContext{
		FixtureCongestion: cfg.Monitor.Congestion,
		DaysToMatch:       cfg.Monitor.DaysToMatch,
		ReturnToPlay:      map[string]struct{}{},
		Policy:            policy,
		RefreshInterval:   cfg.Monitor.RefreshInterval,
	}
	monitor := usecase.NewSquadMonitor(source, builder, scorer, planner, explainer, store, m, logger, initial)
	monitor.SetBroadcast(hub.Broadcast)
	return monitor
}

// ProvideScheduler creates the cycle scheduler.
func ProvideScheduler(monitor *usecase.SquadMonitor, logger *applogger.Logger) *usecase.CycleScheduler {
	return usecase.NewCycleScheduler(monitor, logger)
}

// ProvideHandler creates the monitoring HTTP handler.
func ProvideHandler(
	logger *applogger.Logger,
	monitor *usecase.SquadMonitor,
	scheduler *usecase.CycleScheduler,
	store repository.SnapshotStore,
	hub *stream.Hub,
) xhttp.Handler {
	return api.NewMonitorEchoHandler(logger, monitor, scheduler, store, hub)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	scheduler *usecase.CycleScheduler,
	hub *stream.Hub,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, logger, scheduler, hub, handler)
}
