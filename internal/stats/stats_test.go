package stats_test

import (
	"testing"
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rollup(id int64, position string, c handball.Counters) stats.Rollup {
	return stats.Rollup{ID: id, Name: "P", Position: position, Matches: 1, Stats: c}
}

func TestRollups(t *testing.T) {
	players := []handball.Player{
		{ID: 1, Name: "Ana", Position: "Lateral", Number: 7},
		{ID: 2, Name: "Bea", Position: "Portero", Number: 1},
	}
	mps := []handball.MatchPlayer{
		{PlayerID: 1, Counters: handball.Counters{Goals: 4, Assists: 1, PlayTime: 1800}},
		{PlayerID: 1, Counters: handball.Counters{Goals: 2, Turnovers: 3, PlayTime: 600}},
		{PlayerID: 3, Counters: handball.Counters{Goals: 9}},
	}

	got := stats.Rollups(players, mps)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, 2, got[0].Matches)
	assert.Equal(t, 6, got[0].Stats.Goals)
	assert.Equal(t, 2400, got[0].Stats.PlayTime)
	assert.InDelta(t, 3.0, got[0].AverageStats.Goals, 1e-9)
	assert.InDelta(t, 1.5, got[0].AverageStats.Turnovers, 1e-9)
	assert.InDelta(t, 1200.0, got[0].AverageStats.PlayTime, 1e-9)

	assert.Equal(t, 0, got[1].Matches)
	assert.Equal(t, stats.Averages{}, got[1].AverageStats)
}

func TestScore(t *testing.T) {
	c := handball.Counters{Goals: 5, Assists: 3, Saves: 2, Turnovers: 1, PlayTime: 1800}

	tests := []struct {
		criterion stats.Criterion
		position  string
		want      float64
	}{
		{stats.CriterionOffensive, "Lateral", 14},  // 10 + 4.5 - 0.5
		{stats.CriterionDefensive, "Lateral", 5},   // 4 - 2 + 3
		{stats.CriterionEfficient, "Lateral", 90},  // 80/1 + 10/1
		{stats.CriterionBalanced, "Lateral", 8},    // 5 + 3 + 1 - 1
		{stats.CriterionDefensive, "Portero", 7.5}, // 5 * 1.5
		{stats.CriterionBalanced, "Portero", 6.4},  // 8 * 0.8
		{stats.ParseCriterion("unknown"), "Central", 8},
	}
	for _, tt := range tests {
		t.Run(string(tt.criterion)+"/"+tt.position, func(t *testing.T) {
			assert.InDelta(t, tt.want, stats.Score(rollup(1, tt.position, c), tt.criterion), 1e-9)
		})
	}
}

func TestScore_EfficientUsesHours(t *testing.T) {
	// Two hours on court: 10*(4+0)/1 + 2*4/2.
	r := rollup(1, "Pivote", handball.Counters{Goals: 4, PlayTime: 7200})
	assert.InDelta(t, 44.0, stats.Score(r, stats.CriterionEfficient), 1e-9)
}

func TestScore_RoundsHalfUp(t *testing.T) {
	// 10*1/1 + 2*1/8 = 10.25
	r := rollup(1, "Lateral", handball.Counters{Goals: 1, PlayTime: 8 * 3600})
	assert.InDelta(t, 10.3, stats.Score(r, stats.CriterionEfficient), 1e-9)

	// (1 + 0.5) * 0.8
	r = rollup(1, "Portero", handball.Counters{Goals: 1, Saves: 1})
	assert.InDelta(t, 1.2, stats.Score(r, stats.CriterionBalanced), 1e-9)
}

func TestBestTeam(t *testing.T) {
	rollups := []stats.Rollup{
		rollup(1, "Portero", handball.Counters{Saves: 10}),
		rollup(2, "Lateral", handball.Counters{Goals: 3}),
		rollup(3, "Lateral", handball.Counters{Goals: 8}),
		rollup(4, "Lateral", handball.Counters{Goals: 5}),
		rollup(5, "Central", handball.Counters{Goals: 2}),
		rollup(6, "Extremo", handball.Counters{Goals: 9}),
		rollup(7, "Extremo", handball.Counters{Goals: 1}),
	}

	team := stats.BestTeam(rollups, stats.CriterionBalanced)
	require.Len(t, team, 5)
	ids := []int64{team[0].ID, team[1].ID, team[2].ID, team[3].ID, team[4].ID}
	// No pivot, so the last slot is the best remaining player overall.
	assert.Equal(t, []int64{1, 3, 4, 5, 6}, ids)
	assert.InDelta(t, 4.0, team[0].Score, 1e-9)
}

func TestBestTeam_TiesKeepIDOrder(t *testing.T) {
	rollups := []stats.Rollup{
		rollup(3, "Lateral", handball.Counters{Goals: 2}),
		rollup(1, "Lateral", handball.Counters{Goals: 2}),
		rollup(2, "Lateral", handball.Counters{Goals: 2}),
		rollup(9, "Portero", handball.Counters{Saves: 1}),
	}
	team := stats.BestTeam(rollups, stats.CriterionBalanced)
	require.Len(t, team, 4)
	ids := []int64{team[0].ID, team[1].ID, team[2].ID, team[3].ID}
	// Tied laterals fill both lateral slots by id; the leftover backfills the centre.
	assert.Equal(t, []int64{9, 1, 2, 3}, ids)
}

func TestBestTeam_Empty(t *testing.T) {
	assert.Empty(t, stats.BestTeam(nil, stats.CriterionOffensive))
}

func TestCompare(t *testing.T) {
	p1 := stats.Rollup{ID: 1, Matches: 2, Stats: handball.Counters{Goals: 5, Assists: 2, Turnovers: 1, PlayTime: 100}}
	p2 := stats.Rollup{ID: 2, Matches: 1, Stats: handball.Counters{Goals: 5, Turnovers: 4}}

	c := stats.Compare(p1, p2)
	byName := map[string]stats.MetricComparison{}
	for _, m := range c.Metrics {
		byName[m.Metric] = m
	}
	require.Len(t, c.Metrics, len(handball.Stats)+2)

	goals := byName["goals"]
	assert.Equal(t, 50, goals.Share)
	assert.Equal(t, "Igual", goals.Label)
	assert.Equal(t, stats.Equal, goals.Indicator)
	assert.InDelta(t, 2.5, goals.Average1, 1e-9)
	assert.InDelta(t, 5.0, goals.Average2, 1e-9)

	assists := byName["assists"]
	assert.Equal(t, 100, assists.Share)
	assert.Equal(t, "+2", assists.Label)
	assert.Equal(t, stats.Better, assists.Indicator)

	turnovers := byName["turnovers"]
	assert.Equal(t, 20, turnovers.Share)
	assert.Equal(t, "-3", turnovers.Label)
	assert.Equal(t, -3, turnovers.Delta)
	assert.True(t, turnovers.LowerIsBetter)
	assert.Equal(t, stats.Better, turnovers.Indicator)

	saves := byName["saves"]
	assert.Equal(t, 50, saves.Share)

	eff := byName["efficiency"]
	assert.Equal(t, 6, eff.Total1)
	assert.Equal(t, 1, eff.Total2)
	assert.Equal(t, 86, eff.Share)
	assert.Equal(t, stats.Better, eff.Indicator)

	reversed := stats.Compare(p2, p1)
	for _, m := range reversed.Metrics {
		if m.Metric == "turnovers" {
			assert.Equal(t, stats.Worse, m.Indicator)
		}
	}
}

func TestShare(t *testing.T) {
	assert.Equal(t, 50, stats.Share(0, 0))
	assert.Equal(t, 100, stats.Share(3, 0))
	assert.Equal(t, 0, stats.Share(0, 3))
	assert.Equal(t, 33, stats.Share(1, 2))
	assert.Equal(t, 50, stats.Share(2, -2))
}

func TestSortRollups(t *testing.T) {
	rollups := []stats.Rollup{
		{ID: 1, Stats: handball.Counters{Goals: 1, Assists: 5, Turnovers: 0}},
		{ID: 2, Stats: handball.Counters{Goals: 4, Assists: 1, Turnovers: 3}},
		{ID: 3, Stats: handball.Counters{Goals: 4, Saves: 9, PlayTime: 60}},
	}

	ids := func(rs []stats.Rollup) []int64 {
		out := []int64{}
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Equal(t, []int64{2, 3, 1}, ids(stats.SortRollups(rollups, "goals")))
	assert.Equal(t, []int64{1, 2, 3}, ids(stats.SortRollups(rollups, "assists")))
	assert.Equal(t, []int64{3, 1, 2}, ids(stats.SortRollups(rollups, "saves")))
	assert.Equal(t, []int64{1, 3, 2}, ids(stats.SortRollups(rollups, "efficiency")))
	assert.Equal(t, []int64{3, 1, 2}, ids(stats.SortRollups(rollups, "playTime")))
	assert.Equal(t, int64(1), rollups[0].ID, "input is not reordered")
}

func TestMatchResult(t *testing.T) {
	assert.Equal(t, "Victoria", stats.MatchResult(25, 20))
	assert.Equal(t, "Derrota", stats.MatchResult(19, 20))
	assert.Equal(t, "Empate", stats.MatchResult(20, 20))
}

func TestMatchHistoryAndSummary(t *testing.T) {
	matches := []handball.Match{
		{ID: 2, Opponent: "Rivas", Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Location: "Away"},
		{ID: 1, Opponent: "Alcobendas", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Location: "Home"},
	}
	rows := stats.MatchHistory(matches)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-08", rows[0].Date)
	assert.Equal(t, "???", rows[0].Result)

	summary := stats.Summarize(matches, []stats.Rollup{
		{Stats: handball.Counters{Goals: 3}},
		{Stats: handball.Counters{Goals: 4}},
		{},
	})
	assert.Equal(t, stats.Summary{TotalMatches: 2, ActivePlayers: 3, TotalGoals: 7}, summary)
}
