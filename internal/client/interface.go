package client

import (
	"context"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/stats"
)

// HandballClient defines the interface for talking to the handball stats server.
// It also satisfies live.Saver so a live session can submit its final stats.
type HandballClient interface {
	Health(ctx context.Context) error
	ListPlayers(ctx context.Context) ([]handball.Player, error)
	AddPlayer(ctx context.Context, req AddPlayerRequest) (*handball.Player, error)
	ListMatches(ctx context.Context) ([]handball.Match, error)
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*handball.Match, error)
	GetMatch(ctx context.Context, id int64) (*handball.Match, error)
	MatchSummary(ctx context.Context, id int64) (*MatchSummary, error)
	UpdateMatchStats(ctx context.Context, matchID int64, update handball.StatsUpdate) error
	PlayerStats(ctx context.Context, sortBy string) ([]stats.Rollup, error)
	MatchHistory(ctx context.Context) ([]stats.MatchRow, error)
	Summary(ctx context.Context) (*stats.Summary, error)
	BestTeam(ctx context.Context, criterion string) (*BestTeam, error)
	Compare(ctx context.Context, player1, player2 int64) (*stats.Comparison, error)
	SendMassEmail(ctx context.Context, req MassEmailRequest) (*MassEmailResult, error)
	Theme(ctx context.Context) (handball.Theme, error)
	SetTheme(ctx context.Context, theme handball.Theme) error
}
