//go:build wireinject
// +build wireinject

package di

import (
	"SquadPulse/pkg/config"
	"SquadPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp builds the full application graph.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideRand,
		ProvideTelemetrySource,
		ProvideFeatureBuilder,
		ProvideRiskScorer,
		ProvideSessionPlanner,
		ProvideDriverSummarizer,
		ProvideCache,
		ProvideSnapshotStore,
		ProvideHub,
		ProvideMonitor,
		ProvideScheduler,
		ProvideHandler,
		ProvideApp,
	)
	return nil, nil
}
