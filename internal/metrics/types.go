package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	PlayersCreated     prometheus.Counter
	MatchesCreated     prometheus.Counter
	MatchesFinalized   prometheus.Counter
	EmailsSent         prometheus.Counter
	EmailRecipients    prometheus.Counter
	EmailsFailed       prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
	StartupTimeSeconds prometheus.Gauge
}
