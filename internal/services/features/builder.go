package features

import (
	"math/rand"

	"SquadPulse/internal/domain/models"
)

// Builder derives per-player load features from raw telemetry. Wellness and
// workload-ratio fields have no physical source in a simulated squad, so they
// are drawn from the same distributions the live demo used. The rng is shared
// with the telemetry generator and owned by the cycle goroutine.
type Builder struct {
	rng *rand.Rand
}

func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// Build computes session load and draws the ACWR/wellness fields.
func (b *Builder) Build(t models.PlayerTelemetry) models.PlayerFeatures {
	f := models.PlayerFeatures{PlayerTelemetry: t}
	f.SessionLoad = t.SessionRPE * t.DurationMin
	f.ACWR = 0.7 + b.rng.Float64()*1.1          // uniform [0.7, 1.8)
	f.FatigueZ = b.rng.NormFloat64()*0.8 + 0.5  // normal(0.5, 0.8)
	f.SorenessZ = b.rng.NormFloat64()*0.7 + 0.4 // normal(0.4, 0.7)
	return f
}
