package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"SquadPulse/internal/domain/models"
	drepo "SquadPulse/internal/domain/repository"
	domsvc "SquadPulse/internal/domain/service"
	"SquadPulse/internal/services/features"
	applogger "SquadPulse/pkg/logger"
	"SquadPulse/pkg/util"
)

// SquadMonitor runs the per-cycle pipeline: draw telemetry, build features,
// score, plan and explain every player, then publish the snapshot. Every
// entity it derives is recomputed from scratch each cycle.
type SquadMonitor struct {
	source    drepo.TelemetrySource
	builder   *features.Builder
	scorer    domsvc.RiskScorer
	planner   domsvc.SessionPlanner
	explainer domsvc.DriverSummarizer
	store     drepo.SnapshotStore
	metrics   drepo.Metrics
	logger    *applogger.Logger

	mu    sync.RWMutex
	mctx  models.MatchContext
	cycle uint64

	broadcast func([]byte)
}

func NewSquadMonitor(
	source drepo.TelemetrySource,
	builder *features.Builder,
	scorer domsvc.RiskScorer,
	planner domsvc.SessionPlanner,
	explainer domsvc.DriverSummarizer,
	store drepo.SnapshotStore,
	metrics drepo.Metrics,
	logger *applogger.Logger,
	initial models.MatchContext,
) *SquadMonitor {
	return &SquadMonitor{
		source:    source,
		builder:   builder,
		scorer:    scorer,
		planner:   planner,
		explainer: explainer,
		store:     store,
		metrics:   metrics,
		logger:    logger,
		mctx:      initial,
	}
}

// SetBroadcast registers a sink for marshalled snapshots (the websocket hub).
func (m *SquadMonitor) SetBroadcast(fn func([]byte)) { m.broadcast = fn }

// Context returns the current match context.
func (m *SquadMonitor) Context() models.MatchContext {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mctx
}

// SetContext replaces the match context; it applies from the next cycle.
func (m *SquadMonitor) SetContext(mctx models.MatchContext) {
	m.mu.Lock()
	m.mctx = mctx
	m.mu.Unlock()
}

// Cycle returns the number of completed cycles.
func (m *SquadMonitor) Cycle() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cycle
}

// Roster exposes the monitored player identifiers.
func (m *SquadMonitor) Roster() []string { return m.source.Roster() }

// RunCycle executes one full monitoring cycle and returns its snapshot.
// It is called from a single goroutine; the generator's rng is not shared.
func (m *SquadMonitor) RunCycle(ctx context.Context) *models.SquadSnapshot {
	start := time.Now()
	mctx := m.Context()

	squad := m.source.Squad(ctx)
	players := make([]models.PlayerReport, 0, len(squad))
	highRisk := 0

	for _, t := range squad {
		f := m.builder.Build(t)
		rtp := mctx.IsReturnToPlay(f.PlayerID)

		score := m.scorer.Score(f, mctx.FixtureCongestion, rtp)
		rec := m.planner.Plan(score, rtp, mctx.DaysToMatch, mctx.Policy)
		drivers := m.explainer.Drivers(f)

		m.metrics.RecordPlayerRisk(f.PlayerID, score)
		if score >= 0.75 {
			highRisk++
		}

		players = append(players, models.PlayerReport{
			PlayerID:         f.PlayerID,
			RiskScorePercent: util.Round1(score * 100),
			ReturnToPlay:     rtp,
			Recommendation:   rec,
			Drivers:          drivers,
			Features:         f,
		})
	}

	// Highest risk first; ties broken by player id so output is stable.
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].RiskScorePercent != players[j].RiskScorePercent {
			return players[i].RiskScorePercent > players[j].RiskScorePercent
		}
		return players[i].PlayerID < players[j].PlayerID
	})

	m.mu.Lock()
	m.cycle++
	cycle := m.cycle
	m.mu.Unlock()

	snap := &models.SquadSnapshot{
		Cycle:       cycle,
		GeneratedAt: time.Now().UTC(),
		Context:     mctx.View(),
		Players:     players,
	}

	if err := m.store.Put(snap); err != nil {
		m.metrics.RecordError("snapshot_store")
		m.logger.Error("store snapshot", applogger.Error(err))
	}

	if m.broadcast != nil {
		if b, ok := m.store.LatestJSON(); ok {
			m.broadcast(b)
		}
	}

	m.metrics.RecordCycle(time.Since(start).Seconds())
	m.metrics.RecordHighRisk(highRisk)
	m.logger.Info("cycle complete",
		applogger.Int64("cycle", int64(cycle)),
		applogger.Int("players", len(players)),
		applogger.Int("high_risk", highRisk),
		applogger.Duration("took", time.Since(start)),
	)

	return snap
}
