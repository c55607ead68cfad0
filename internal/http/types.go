package http

import (
	"net/http"

	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/notifier"
	"github.com/mauv0809/handball-stats/internal/processor"
	"github.com/mauv0809/handball-stats/internal/settings"
)

type Server struct {
	Clubs          club.ClubStore
	Matches        matches.MatchStore
	Settings       settings.SettingsStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Mailer         notifier.Mailer // nil when mass email is not configured
	Processor      *processor.Processor
	Router         *http.ServeMux
}
