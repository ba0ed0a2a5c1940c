package usecase

import (
	"context"
	"testing"
	"time"

	applogger "SquadPulse/pkg/logger"
)

func testScheduler(t *testing.T) (*CycleScheduler, *SquadMonitor) {
	t.Helper()
	mctx := defaultCtx()
	mctx.RefreshInterval = 60 * time.Second // out of the way for trigger tests
	m := testMonitor(t, 5, 21, mctx)
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewCycleScheduler(m, l), m
}

func TestSchedulerRunsInitialCycle(t *testing.T) {
	s, m := testScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for m.Cycle() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("initial cycle never ran")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSchedulerManualTrigger(t *testing.T) {
	s, m := testScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop()

	snap, err := s.Trigger(context.Background())
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if snap == nil || len(snap.Players) != 5 {
		t.Fatalf("unexpected snapshot from trigger: %+v", snap)
	}
	if m.Cycle() < snap.Cycle {
		t.Fatalf("monitor cycle behind returned snapshot")
	}
}

func TestSchedulerIdleBetweenCycles(t *testing.T) {
	s, _ := testScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop()

	if _, err := s.Trigger(context.Background()); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if got := s.State(); got != StateIdle {
		t.Fatalf("expected idle after cycle, got %s", got)
	}
}

func TestSchedulerTriggerAfterStop(t *testing.T) {
	s, _ := testScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	s.Stop()

	trigCtx, trigCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer trigCancel()
	if _, err := s.Trigger(trigCtx); err == nil {
		t.Fatalf("expected error after stop")
	}
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	s, _ := testScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	s.Start(ctx) // second call is a no-op
	defer s.Stop()

	if _, err := s.Trigger(context.Background()); err != nil {
		t.Fatalf("trigger: %v", err)
	}
}
