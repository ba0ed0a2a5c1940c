package telemetry

import (
	"context"
	"fmt"
	"math/rand"

	"SquadPulse/internal/domain/models"
	drepo "SquadPulse/internal/domain/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator implements a TelemetrySource backed by synthetic GPS draws.
// The roster is generated once and stays stable for the process lifetime;
// every cycle redraws all workload values independently. With seed 0 the
// generator is time-seeded and non-reproducible, matching the live demo;
// a non-zero seed makes scenarios deterministic for tests.
type Generator struct {
	rng    *rand.Rand
	roster []string
}

// New creates a Generator for a squad of the given size.
func New(size int, seed int64, rng *rand.Rand) *Generator {
	faker := gofakeit.New(seed)
	roster := make([]string, 0, size)
	seen := make(map[string]struct{}, size)
	for len(roster) < size {
		name := fmt.Sprintf("%s %s", faker.FirstName(), faker.LastName())
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		roster = append(roster, name)
	}
	return &Generator{rng: rng, roster: roster}
}

// Roster returns the stable player identifiers.
func (g *Generator) Roster() []string {
	out := make([]string, len(g.roster))
	copy(out, g.roster)
	return out
}

// Squad draws one fresh telemetry record per roster player.
func (g *Generator) Squad(ctx context.Context) []models.PlayerTelemetry {
	out := make([]models.PlayerTelemetry, 0, len(g.roster))
	for _, id := range g.roster {
		out = append(out, models.PlayerTelemetry{
			PlayerID:           id,
			TotalDistanceM:     float64(g.intn(4500, 11000)),
			HighSpeedDistanceM: float64(g.intn(300, 1500)),
			Accelerations:      g.intn(40, 95),
			Decelerations:      g.intn(40, 95),
			SessionRPE:         g.uniform(4.5, 8.5),
			DurationMin:        float64(g.intn(60, 110)),
		})
	}
	return out
}

// intn draws an int in [lo, hi).
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo)
}

// uniform draws a float64 in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

var _ drepo.TelemetrySource = (*Generator)(nil)
