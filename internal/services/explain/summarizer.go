package explain

import (
	"SquadPulse/internal/domain/models"
	domsvc "SquadPulse/internal/domain/service"
)

// Driver labels in declaration order. Output order follows this list, never
// severity.
const (
	DriverWorkloadSpike = "Workload spike (ACWR)"
	DriverFatigue       = "Elevated fatigue"
	DriverSoreness      = "Muscle soreness"
	DriverHighSpeed     = "High-speed running exposure"
	DriverNeuromuscular = "Neuromuscular load (accel/decel)"

	// NoDrivers is returned alone when no threshold is exceeded.
	NoDrivers = "No acute risk flags"
)

// Summarizer inspects a feature vector and lists the thresholds it exceeds.
// Flags are independent; all are checked.
type Summarizer struct{}

func NewSummarizer() *Summarizer { return &Summarizer{} }

func (Summarizer) Drivers(f models.PlayerFeatures) []string {
	var out []string
	if f.ACWR > 1.3 {
		out = append(out, DriverWorkloadSpike)
	}
	if f.FatigueZ > 1 {
		out = append(out, DriverFatigue)
	}
	if f.SorenessZ > 1 {
		out = append(out, DriverSoreness)
	}
	if f.HighSpeedDistanceM > 800 {
		out = append(out, DriverHighSpeed)
	}
	if f.Accelerations+f.Decelerations > 120 {
		out = append(out, DriverNeuromuscular)
	}
	if len(out) == 0 {
		return []string{NoDrivers}
	}
	return out
}

var _ domsvc.DriverSummarizer = (*Summarizer)(nil)
