package models

// PlayerTelemetry is one raw GPS workload record for a player within a cycle.
type PlayerTelemetry struct {
	PlayerID           string  `json:"player_id"`
	TotalDistanceM     float64 `json:"total_distance_m"`
	HighSpeedDistanceM float64 `json:"high_speed_distance_m"`
	Accelerations      int     `json:"accelerations"`
	Decelerations      int     `json:"decelerations"`
	SessionRPE         float64 `json:"session_rpe"` // rating of perceived exertion, [0,10]
	DurationMin        float64 `json:"duration_min"`
}

// PlayerFeatures extends raw telemetry with derived load and wellness fields.
type PlayerFeatures struct {
	PlayerTelemetry
	SessionLoad float64 `json:"session_load"` // session_rpe * duration_min
	ACWR        float64 `json:"acwr"`         // acute:chronic workload ratio
	FatigueZ    float64 `json:"fatigue_z"`
	SorenessZ   float64 `json:"soreness_z"`
}
