package models

import (
	"fmt"
	"sort"
	"time"
)

// Policy selects the session planning rule table.
type Policy string

const (
	PolicyBasic    Policy = "basic"    // risk tiers only
	PolicyMatchday Policy = "matchday" // match-day aware precedence rules
)

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyBasic, PolicyMatchday:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown policy '%s'", s)
}

// SessionRecommendation is the planned training session for one player.
type SessionRecommendation struct {
	SessionType string `json:"session_type"`
	LoadTarget  string `json:"load_target"`
	HSRLimit    string `json:"hsr_limit"`
	AccelDecel  string `json:"accel_decel_guidance"`
}

// MatchContext carries the squad-level inputs supplied per cycle.
type MatchContext struct {
	FixtureCongestion bool
	DaysToMatch       int
	ReturnToPlay      map[string]struct{}
	Policy            Policy
	RefreshInterval   time.Duration
}

// IsReturnToPlay reports whether the player is flagged return-to-play.
// Names that match no roster player simply never hit.
func (c MatchContext) IsReturnToPlay(playerID string) bool {
	_, ok := c.ReturnToPlay[playerID]
	return ok
}

// ReturnToPlayList returns the RTP set as a sorted slice.
func (c MatchContext) ReturnToPlayList() []string {
	out := make([]string, 0, len(c.ReturnToPlay))
	for id := range c.ReturnToPlay {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PlayerReport is one scored, planned and explained row of a squad snapshot.
type PlayerReport struct {
	PlayerID         string                `json:"player_id"`
	RiskScorePercent float64               `json:"risk_score_percent"` // 0-100, one decimal
	ReturnToPlay     bool                  `json:"return_to_play"`
	Recommendation   SessionRecommendation `json:"recommendation"`
	Drivers          []string              `json:"risk_drivers"`
	Features         PlayerFeatures        `json:"features"`
}

// SquadSnapshot is the full result of one monitoring cycle.
// It is recomputed from scratch every cycle; nothing survives across cycles.
type SquadSnapshot struct {
	Cycle       uint64         `json:"cycle"`
	GeneratedAt time.Time      `json:"generated_at"`
	Context     ContextView    `json:"context"`
	Players     []PlayerReport `json:"players"`
}

// ContextView is the JSON shape of MatchContext.
type ContextView struct {
	FixtureCongestion      bool     `json:"fixture_congestion"`
	DaysToMatch            int      `json:"days_to_match"`
	ReturnToPlayPlayers    []string `json:"return_to_play_players"`
	Policy                 string   `json:"policy"`
	RefreshIntervalSeconds int      `json:"refresh_interval_seconds"`
}

// View renders the context for API responses and snapshots.
func (c MatchContext) View() ContextView {
	return ContextView{
		FixtureCongestion:      c.FixtureCongestion,
		DaysToMatch:            c.DaysToMatch,
		ReturnToPlayPlayers:    c.ReturnToPlayList(),
		Policy:                 string(c.Policy),
		RefreshIntervalSeconds: int(c.RefreshInterval.Seconds()),
	}
}
