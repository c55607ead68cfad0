package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_players_created_total",
			Help: "The total number of players added to the roster.",
		}),
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_matches_created_total",
			Help: "The total number of matches set up.",
		}),
		MatchesFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_matches_finalized_total",
			Help: "The total number of matches whose final stats were saved.",
		}),
		EmailsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_mass_emails_sent_total",
			Help: "The total number of mass emails accepted by the provider.",
		}),
		EmailRecipients: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_mass_email_recipients_total",
			Help: "The total number of recipients addressed by sent mass emails.",
		}),
		EmailsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_mass_emails_failed_total",
			Help: "The total number of mass emails the provider rejected.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "handball_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "handball_http_request_duration_seconds",
			Help:    "The duration of HTTP requests by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "handball_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayersCreated,
		s.MatchesCreated,
		s.MatchesFinalized,
		s.EmailsSent,
		s.EmailRecipients,
		s.EmailsFailed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.RequestDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayersCreated() {
	s.PlayersCreated.Inc()
}

func (s *Service) IncMatchesCreated() {
	s.MatchesCreated.Inc()
}

func (s *Service) IncMatchesFinalized() {
	s.MatchesFinalized.Inc()
}

func (s *Service) IncEmailsSent(recipients int) {
	s.EmailsSent.Inc()
	s.EmailRecipients.Add(float64(recipients))
}

func (s *Service) IncEmailsFailed() {
	s.EmailsFailed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) ObserveRequestDuration(route string, duration float64) {
	s.RequestDuration.WithLabelValues(route).Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
