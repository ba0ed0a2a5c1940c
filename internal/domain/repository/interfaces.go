package repository

import (
	"context"

	"SquadPulse/internal/domain/models"
)

// TelemetrySource produces one telemetry record per roster player per cycle.
// Records are independent between cycles; there is no continuity by design.
type TelemetrySource interface {
	Roster() []string
	Squad(ctx context.Context) []models.PlayerTelemetry
}

// SnapshotStore holds the latest squad snapshot. Snapshots are transient;
// a new cycle replaces the previous one entirely.
type SnapshotStore interface {
	Put(snap *models.SquadSnapshot) error
	Latest() (*models.SquadSnapshot, bool)
	LatestJSON() ([]byte, bool)
}

type Metrics interface {
	RecordCycle(seconds float64)
	RecordPlayerRisk(player string, risk float64)
	RecordHighRisk(count int)
	RecordError(kind string)
	SetStreamClients(n int)
}
