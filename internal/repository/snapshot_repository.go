package repository

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"SquadPulse/internal/domain/models"
	drepo "SquadPulse/internal/domain/repository"
	"SquadPulse/internal/service/cache"
)

const snapshotKey = "squad:latest"

// SnapshotRepository keeps the latest squad snapshot in memory and mirrors
// its marshalled form into a BytesCache so read endpoints can serve the
// bytes of the current cycle without re-marshalling per request.
type SnapshotRepository struct {
	mu     sync.RWMutex
	latest *models.SquadSnapshot

	cache cache.BytesCache
	ttl   time.Duration
}

func NewSnapshotRepository(c cache.BytesCache, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{cache: c, ttl: ttl}
}

// Put replaces the latest snapshot. The previous cycle's snapshot is
// discarded entirely; there is intentionally no history.
func (r *SnapshotRepository) Put(snap *models.SquadSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	r.mu.Lock()
	r.latest = snap
	r.mu.Unlock()

	if err := r.cache.SetBytes(snapshotKey, b, r.ttl); err != nil {
		return fmt.Errorf("cache snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot, if any cycle has completed.
func (r *SnapshotRepository) Latest() (*models.SquadSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == nil {
		return nil, false
	}
	return r.latest, true
}

// LatestJSON returns the marshalled latest snapshot, preferring the cached
// bytes and falling back to a fresh marshal when the cache entry expired.
func (r *SnapshotRepository) LatestJSON() ([]byte, bool) {
	if b, ok, err := r.cache.GetBytes(snapshotKey); err == nil && ok {
		return b, true
	}

	snap, ok := r.Latest()
	if !ok {
		return nil, false
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, false
	}
	_ = r.cache.SetBytes(snapshotKey, b, r.ttl)
	return b, true
}

var _ drepo.SnapshotStore = (*SnapshotRepository)(nil)
