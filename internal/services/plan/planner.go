package plan

import (
	"SquadPulse/internal/domain/models"
	domsvc "SquadPulse/internal/domain/service"
)

// Planner maps a risk score and match context to a session recommendation.
// Both rule tables live here; the policy value selects between them.
type Planner struct{}

func NewPlanner() *Planner { return &Planner{} }

// Risk tier thresholds, evaluated descending.
const (
	tierRecovery = 0.75
	tierModified = 0.55
	tierNormal   = 0.35
)

var (
	matchDayPlan = models.SessionRecommendation{
		SessionType: "MATCH DAY",
		LoadTarget:  "Match",
		HSRLimit:    "Match demands",
		AccelDecel:  "Match demands",
	}
	rtpPlan = models.SessionRecommendation{
		SessionType: "Return-to-Play",
		LoadTarget:  "Low-Moderate",
		HSRLimit:    "< 60%",
		AccelDecel:  "Controlled",
	}
	md1Plan = models.SessionRecommendation{
		SessionType: "MD-1 Activation",
		LoadTarget:  "Very Low",
		HSRLimit:    "Primers only",
		AccelDecel:  "Sharp, few",
	}
	md2ModifiedPlan = models.SessionRecommendation{
		SessionType: "MD-2 Modified",
		LoadTarget:  "-30%",
		HSRLimit:    "< 70%",
		AccelDecel:  "Reduced",
	}
	md2TacticalPlan = models.SessionRecommendation{
		SessionType: "MD-2 Tactical",
		LoadTarget:  "Moderate",
		HSRLimit:    "< 80%",
		AccelDecel:  "Monitor",
	}
)

// Plan applies the selected policy. Precedence is strict: the first matching
// rule wins and no lower rule is consulted.
func (Planner) Plan(risk float64, returnToPlay bool, daysToMatch int, policy models.Policy) models.SessionRecommendation {
	if policy == models.PolicyMatchday {
		switch {
		case daysToMatch == 0:
			return matchDayPlan
		case returnToPlay:
			return rtpPlan
		case daysToMatch == 1:
			return md1Plan
		case daysToMatch == 2:
			if risk >= tierModified {
				return md2ModifiedPlan
			}
			return md2TacticalPlan
		}
		// MD-3 or further out falls through to the risk tier table.
		return riskTier(risk)
	}

	if returnToPlay {
		return rtpPlan
	}
	return riskTier(risk)
}

// riskTier is the shared four-tier table keyed on descending risk thresholds.
func riskTier(risk float64) models.SessionRecommendation {
	switch {
	case risk >= tierRecovery:
		return models.SessionRecommendation{
			SessionType: "Recovery / Medical",
			LoadTarget:  "Very Low",
			HSRLimit:    "None",
			AccelDecel:  "None",
		}
	case risk >= tierModified:
		return models.SessionRecommendation{
			SessionType: "Modified Training",
			LoadTarget:  "-30%",
			HSRLimit:    "< 70%",
			AccelDecel:  "Reduced",
		}
	case risk >= tierNormal:
		return models.SessionRecommendation{
			SessionType: "Normal Training",
			LoadTarget:  "Normal",
			HSRLimit:    "< 85%",
			AccelDecel:  "Monitor",
		}
	default:
		return models.SessionRecommendation{
			SessionType: "Full Training",
			LoadTarget:  "Full",
			HSRLimit:    "No limit",
			AccelDecel:  "Full",
		}
	}
}

var _ domsvc.SessionPlanner = (*Planner)(nil)
