package stats

import "github.com/mauv0809/handball-stats/internal/handball"

// MatchResult names the outcome from the team's point of view.
func MatchResult(teamScore, opponentScore int) string {
	switch {
	case teamScore > opponentScore:
		return ResultWin
	case teamScore < opponentScore:
		return ResultLoss
	}
	return ResultDraw
}

// MatchHistory lists matches for the history view. The result column is not
// derived here; use MatchResult on a loaded match instead.
func MatchHistory(matches []handball.Match) []MatchRow {
	rows := make([]MatchRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, MatchRow{
			ID:       m.ID,
			Opponent: m.Opponent,
			Date:     m.Date.Format("2006-01-02"),
			Location: m.Location,
			Result:   UnknownResult,
		})
	}
	return rows
}

// Summarize computes the dashboard totals.
func Summarize(matches []handball.Match, rollups []Rollup) Summary {
	s := Summary{
		TotalMatches:  len(matches),
		ActivePlayers: len(rollups),
	}
	for _, r := range rollups {
		s.TotalGoals += r.Stats.Goals
	}
	return s
}
