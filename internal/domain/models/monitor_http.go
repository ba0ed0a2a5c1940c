package models

// Requests for the monitoring HTTP endpoints. Defined in domain for consistency and reuse.

// ContextRequest is a partial update of the match context. Nil fields keep
// their current value; the RTP player list replaces the set wholesale.
type ContextRequest struct {
	FixtureCongestion      *bool    `json:"fixture_congestion"`
	DaysToMatch            *int     `json:"days_to_match" validate:"omitempty,gte=0,lte=6"`
	ReturnToPlayPlayers    []string `json:"return_to_play_players"`
	Policy                 string   `json:"policy" validate:"omitempty,oneof=basic matchday"`
	RefreshIntervalSeconds *int     `json:"refresh_interval_seconds" validate:"omitempty,gte=10,lte=120"`
}

type PlayerRequest struct {
	ID string `param:"id" validate:"required"`
}
