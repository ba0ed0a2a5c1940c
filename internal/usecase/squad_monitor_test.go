package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"SquadPulse/internal/domain/models"
	internalrepo "SquadPulse/internal/repository"
	"SquadPulse/internal/service/cache"
	"SquadPulse/internal/service/telemetry"
	"SquadPulse/internal/services/explain"
	"SquadPulse/internal/services/features"
	"SquadPulse/internal/services/plan"
	"SquadPulse/internal/services/risk"
	applogger "SquadPulse/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordCycle(float64)              {}
func (noopMetrics) RecordPlayerRisk(string, float64) {}
func (noopMetrics) RecordHighRisk(int)               {}
func (noopMetrics) RecordError(string)               {}
func (noopMetrics) SetStreamClients(int)             {}

func testMonitor(t *testing.T, size int, seed int64, mctx models.MatchContext) *SquadMonitor {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	source := telemetry.New(size, seed, rng)
	store := internalrepo.NewSnapshotRepository(cache.NewTTLCache(), time.Minute)
	return NewSquadMonitor(
		source,
		features.NewBuilder(rng),
		risk.NewEngine(),
		plan.NewPlanner(),
		explain.NewSummarizer(),
		store,
		noopMetrics{},
		l,
		mctx,
	)
}

func defaultCtx() models.MatchContext {
	return models.MatchContext{
		DaysToMatch:     4,
		ReturnToPlay:    map[string]struct{}{},
		Policy:          models.PolicyMatchday,
		RefreshInterval: 30 * time.Second,
	}
}

func TestRunCycleProducesFullSquad(t *testing.T) {
	m := testMonitor(t, 25, 1, defaultCtx())
	snap := m.RunCycle(context.Background())
	if len(snap.Players) != 25 {
		t.Fatalf("expected 25 rows, got %d", len(snap.Players))
	}
	if snap.Cycle != 1 {
		t.Fatalf("expected cycle 1, got %d", snap.Cycle)
	}
	for _, p := range snap.Players {
		if p.RiskScorePercent < 0 || p.RiskScorePercent > 100 {
			t.Fatalf("risk percent out of bounds: %v", p.RiskScorePercent)
		}
		if p.Recommendation.SessionType == "" {
			t.Fatalf("player %s has no recommendation", p.PlayerID)
		}
		if len(p.Drivers) == 0 {
			t.Fatalf("player %s has no driver flags", p.PlayerID)
		}
	}
}

func TestRunCycleSortsByRiskDescending(t *testing.T) {
	m := testMonitor(t, 25, 2, defaultCtx())
	snap := m.RunCycle(context.Background())
	for i := 1; i < len(snap.Players); i++ {
		if snap.Players[i].RiskScorePercent > snap.Players[i-1].RiskScorePercent {
			t.Fatalf("rows not sorted at index %d", i)
		}
	}
}

func TestRunCycleStoresSnapshot(t *testing.T) {
	m := testMonitor(t, 5, 3, defaultCtx())
	snap := m.RunCycle(context.Background())
	got, ok := m.store.Latest()
	if !ok || got.Cycle != snap.Cycle {
		t.Fatalf("snapshot not stored")
	}
}

func TestRTPAppliedToFlaggedPlayer(t *testing.T) {
	mctx := defaultCtx()
	m := testMonitor(t, 5, 4, mctx)
	target := m.Roster()[0]
	mctx.ReturnToPlay = map[string]struct{}{target: {}}
	m.SetContext(mctx)

	snap := m.RunCycle(context.Background())
	for _, p := range snap.Players {
		if p.PlayerID == target {
			if !p.ReturnToPlay {
				t.Fatalf("expected %s flagged return-to-play", target)
			}
			if p.Recommendation.SessionType != "Return-to-Play" {
				t.Fatalf("expected Return-to-Play plan, got %s", p.Recommendation.SessionType)
			}
			return
		}
	}
	t.Fatalf("player %s missing from snapshot", target)
}

func TestUnknownRTPPlayerSilentlyIgnored(t *testing.T) {
	mctx := defaultCtx()
	mctx.ReturnToPlay = map[string]struct{}{"nobody at all": {}}
	m := testMonitor(t, 5, 5, mctx)

	snap := m.RunCycle(context.Background())
	if len(snap.Players) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(snap.Players))
	}
	for _, p := range snap.Players {
		if p.ReturnToPlay {
			t.Fatalf("no roster player should be flagged, got %s", p.PlayerID)
		}
	}
}

func TestMatchDayContextReachesPlanner(t *testing.T) {
	mctx := defaultCtx()
	mctx.DaysToMatch = 0
	m := testMonitor(t, 5, 6, mctx)
	snap := m.RunCycle(context.Background())
	for _, p := range snap.Players {
		if p.Recommendation.SessionType != "MATCH DAY" {
			t.Fatalf("expected MATCH DAY for all, got %s", p.Recommendation.SessionType)
		}
	}
}

func TestBroadcastReceivesEachCycle(t *testing.T) {
	m := testMonitor(t, 5, 7, defaultCtx())
	var payloads [][]byte
	m.SetBroadcast(func(b []byte) { payloads = append(payloads, b) })

	m.RunCycle(context.Background())
	m.RunCycle(context.Background())
	if len(payloads) != 2 {
		t.Fatalf("expected 2 broadcasts, got %d", len(payloads))
	}
	if len(payloads[0]) == 0 {
		t.Fatalf("empty broadcast payload")
	}
}

func TestContextUpdateAppliesNextCycle(t *testing.T) {
	m := testMonitor(t, 5, 8, defaultCtx())
	m.RunCycle(context.Background())

	mctx := m.Context()
	mctx.FixtureCongestion = true
	m.SetContext(mctx)

	snap := m.RunCycle(context.Background())
	if !snap.Context.FixtureCongestion {
		t.Fatalf("context update not reflected in snapshot")
	}
}
