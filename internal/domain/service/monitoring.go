package service

import "SquadPulse/internal/domain/models"

// RiskScorer maps a player's feature vector plus contextual flags to a
// bounded injury risk score in [0,1].
type RiskScorer interface {
	Score(f models.PlayerFeatures, congestion, returnToPlay bool) float64
}

// SessionPlanner maps a risk score plus context to a training session
// recommendation under the selected policy.
type SessionPlanner interface {
	Plan(risk float64, returnToPlay bool, daysToMatch int, policy models.Policy) models.SessionRecommendation
}

// DriverSummarizer emits human-readable labels for exceeded thresholds.
type DriverSummarizer interface {
	Drivers(f models.PlayerFeatures) []string
}
