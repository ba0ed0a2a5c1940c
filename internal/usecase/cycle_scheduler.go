package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"SquadPulse/internal/domain/models"
	applogger "SquadPulse/pkg/logger"
)

// Scheduler states.
const (
	StateIdle       = "idle"
	StateRefreshing = "refreshing"
)

// CycleScheduler drives the monitor as an explicit two-state machine:
// Idle until the refresh timer expires or a manual trigger arrives, then
// Refreshing for exactly one cycle. A cycle always runs to completion, and
// because a single goroutine owns the loop a trigger landing mid-cycle waits
// its turn instead of starting a concurrent run.
type CycleScheduler struct {
	monitor *SquadMonitor
	logger  *applogger.Logger

	trigger chan chan *models.SquadSnapshot
	stop    chan struct{}

	refreshing atomic.Bool

	mu      sync.Mutex
	started bool
}

func NewCycleScheduler(monitor *SquadMonitor, logger *applogger.Logger) *CycleScheduler {
	return &CycleScheduler{
		monitor: monitor,
		logger:  logger,
		trigger: make(chan chan *models.SquadSnapshot),
		stop:    make(chan struct{}),
	}
}

// State reports the current scheduler state.
func (s *CycleScheduler) State() string {
	if s.refreshing.Load() {
		return StateRefreshing
	}
	return StateIdle
}

// Start launches the refresh loop. The first cycle runs immediately so the
// API has a snapshot to serve from the start.
func (s *CycleScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.loop(ctx)
}

func (s *CycleScheduler) loop(ctx context.Context) {
	s.runCycle(ctx)

	timer := time.NewTimer(s.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-timer.C:
			s.runCycle(ctx)
			timer.Reset(s.interval())
		case resp := <-s.trigger:
			resp <- s.runCycle(ctx)
			// Manual refresh restarts the wait so cycles stay evenly spaced.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.interval())
		}
	}
}

func (s *CycleScheduler) runCycle(ctx context.Context) *models.SquadSnapshot {
	s.refreshing.Store(true)
	defer s.refreshing.Store(false)
	return s.monitor.RunCycle(ctx)
}

// interval reads the refresh interval from the live match context.
func (s *CycleScheduler) interval() time.Duration {
	return s.monitor.Context().RefreshInterval
}

// Trigger requests an immediate cycle and waits for its snapshot.
func (s *CycleScheduler) Trigger(ctx context.Context) (*models.SquadSnapshot, error) {
	resp := make(chan *models.SquadSnapshot, 1)
	select {
	case s.trigger <- resp:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.stop:
		return nil, context.Canceled
	}

	select {
	case snap := <-resp:
		return snap, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stop terminates the loop. Safe to call once.
func (s *CycleScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	close(s.stop)
	s.logger.Info("scheduler stopped")
}
