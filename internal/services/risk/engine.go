package risk

import (
	"math"

	"SquadPulse/internal/domain/models"
	domsvc "SquadPulse/internal/domain/service"
)

// Threshold tiers of the additive point scale. ACWR tiers are mutually
// exclusive, evaluated high to low.
const (
	acwrSpike     = 1.6
	acwrElevated  = 1.3
	acwrUnderload = 0.8

	hsrHigh     = 1200.0
	hsrModerate = 800.0

	neuroHigh     = 140
	neuroModerate = 100

	fatigueWeight  = 0.12
	sorenessWeight = 0.15

	congestionPoints = 0.15
	rtpMultiplier    = 1.25
)

// Engine computes a bounded injury risk score from workload features.
// It is a pure function of its inputs: no state, no history.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Score accumulates additive threshold contributions, applies the
// return-to-play multiplier last, and clamps to 1.0.
//
// Inputs are not validated; out-of-range values flow through the arithmetic
// unchanged. That matches the upstream contract where telemetry is assumed
// well-formed by the time it reaches the engine.
func (Engine) Score(f models.PlayerFeatures, congestion, returnToPlay bool) float64 {
	score := 0.0

	switch {
	case f.ACWR > acwrSpike:
		score += 0.40
	case f.ACWR > acwrElevated:
		score += 0.25
	case f.ACWR < acwrUnderload:
		score += 0.10
	}

	score += math.Max(0, f.FatigueZ) * fatigueWeight
	score += math.Max(0, f.SorenessZ) * sorenessWeight

	switch {
	case f.HighSpeedDistanceM > hsrHigh:
		score += 0.20
	case f.HighSpeedDistanceM > hsrModerate:
		score += 0.10
	}

	switch neuro := f.Accelerations + f.Decelerations; {
	case neuro > neuroHigh:
		score += 0.15
	case neuro > neuroModerate:
		score += 0.08
	}

	if congestion {
		score += congestionPoints
	}

	// RTP amplifies everything accumulated so far, congestion included.
	if returnToPlay {
		score *= rtpMultiplier
	}

	return math.Min(score, 1.0)
}

var _ domsvc.RiskScorer = (*Engine)(nil)
