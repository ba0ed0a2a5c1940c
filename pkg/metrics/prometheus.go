package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	cyclesTotal   prometheus.Counter
	cycleDuration prometheus.Histogram
	playerRisk    *prometheus.GaugeVec
	highRisk      prometheus.Gauge
	errorsTotal   *prometheus.CounterVec
	streamClients prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		cyclesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "squadpulse_cycles_total",
				Help: "Total number of completed monitoring cycles",
			},
		),
		cycleDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "squadpulse_cycle_duration_seconds",
				Help:    "Duration of a full monitoring cycle in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		playerRisk: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "squadpulse_player_risk",
				Help: "Last computed injury risk score per player",
			},
			[]string{"player"},
		),
		highRisk: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "squadpulse_high_risk_players",
				Help: "Players in the recovery/medical risk tier in the last cycle",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "squadpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		streamClients: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "squadpulse_stream_clients",
				Help: "Currently connected websocket subscribers",
			},
		),
	}
}

// RecordCycle records one completed cycle and its duration.
func (r *Recorder) RecordCycle(seconds float64) {
	r.cyclesTotal.Inc()
	r.cycleDuration.Observe(seconds)
}

// RecordPlayerRisk records the last risk score for a player.
func (r *Recorder) RecordPlayerRisk(player string, risk float64) {
	r.playerRisk.WithLabelValues(player).Set(risk)
}

// RecordHighRisk records the high-risk player count for the last cycle.
func (r *Recorder) RecordHighRisk(count int) {
	r.highRisk.Set(float64(count))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// SetStreamClients records the current websocket subscriber count.
func (r *Recorder) SetStreamClients(n int) {
	r.streamClients.Set(float64(n))
}
