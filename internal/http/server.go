package http

import (
	"net/http"

	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/http/handlers"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/notifier"
	"github.com/mauv0809/handball-stats/internal/processor"
	"github.com/mauv0809/handball-stats/internal/settings"
)

func NewServer(clubStore club.ClubStore, matchStore matches.MatchStore, settingsStore settings.SettingsStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, mailer notifier.Mailer, processor *processor.Processor) *Server {
	server := &Server{
		Clubs:          clubStore,
		Matches:        matchStore,
		Settings:       settingsStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Mailer:         mailer,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.handle("GET /health", handlers.HealthCheckHandler())

	s.handle("GET /players", handlers.ListPlayersHandler(s.Clubs))
	s.handle("POST /players", handlers.AddPlayerHandler(s.Clubs, s.Metrics))
	s.handle("GET /players/{id}", handlers.GetPlayerHandler(s.Clubs))

	s.handle("GET /matches", handlers.ListMatchesHandler(s.Matches))
	s.handle("POST /matches", handlers.CreateMatchHandler(s.Matches, s.Processor))
	s.handle("GET /matches/{id}", handlers.GetMatchHandler(s.Matches))
	s.handle("PATCH /matches/{id}", handlers.UpdateMatchStatsHandler(s.Matches, s.Processor))
	s.handle("GET /matches/{id}/summary", handlers.MatchSummaryHandler(s.Matches))

	s.handle("GET /stats/players", handlers.PlayerStatsHandler(s.Clubs, s.Matches))
	s.handle("GET /stats/matches", handlers.MatchHistoryHandler(s.Matches))
	s.handle("GET /stats/summary", handlers.SummaryHandler(s.Clubs, s.Matches))
	s.handle("GET /stats/best-team", handlers.BestTeamHandler(s.Clubs, s.Matches))
	s.handle("GET /stats/compare", handlers.CompareHandler(s.Clubs, s.Matches))

	s.handle("POST /mass-email", handlers.MassEmailHandler(s.Mailer))

	s.handle("GET /preferences/theme", handlers.GetThemeHandler(s.Settings))
	s.handle("PUT /preferences/theme", handlers.SetThemeHandler(s.Settings))

	s.handle("POST /events/{topic}", handlers.EventPushHandler(s.Processor))
}

// handle registers h under pattern wrapped with the common middleware stack.
func (s *Server) handle(pattern string, h http.Handler) {
	s.Router.Handle(pattern, Chain(h,
		recoverMiddleware,
		requestIDMiddleware,
		paramsMiddleware,
		metricsMiddleware(pattern, s.Metrics),
	))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
