package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPlayersCreated()
	IncMatchesCreated()
	IncMatchesFinalized()
	IncEmailsSent(recipients int)
	IncEmailsFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	ObserveRequestDuration(route string, duration float64)
	SetStartupTime(duration float64)
}
