package stats

import (
	"sort"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// Rollups aggregates match players per player. The result follows the order of players.
func Rollups(players []handball.Player, matchPlayers []handball.MatchPlayer) []Rollup {
	byPlayer := make(map[int64][]handball.MatchPlayer, len(players))
	for _, mp := range matchPlayers {
		byPlayer[mp.PlayerID] = append(byPlayer[mp.PlayerID], mp)
	}

	out := make([]Rollup, 0, len(players))
	for _, p := range players {
		r := Rollup{
			ID:       p.ID,
			Name:     p.Name,
			Position: p.Position,
			Number:   p.Number,
			Category: p.Category,
		}
		for _, mp := range byPlayer[p.ID] {
			r.Matches++
			r.Stats.Add(mp.Counters)
		}
		r.AverageStats = averages(r.Stats, r.Matches)
		out = append(out, r)
	}
	return out
}

func averages(c handball.Counters, matches int) Averages {
	if matches == 0 {
		return Averages{}
	}
	n := float64(matches)
	return Averages{
		Goals:          float64(c.Goals) / n,
		Assists:        float64(c.Assists) / n,
		Saves:          float64(c.Saves) / n,
		Turnovers:      float64(c.Turnovers) / n,
		ShotsOnGoal:    float64(c.ShotsOnGoal) / n,
		ShotsOffTarget: float64(c.ShotsOffTarget) / n,
		Recoveries:     float64(c.Recoveries) / n,
		FoulsCommitted: float64(c.FoulsCommitted) / n,
		FoulsReceived:  float64(c.FoulsReceived) / n,
		YellowCards:    float64(c.YellowCards) / n,
		RedCards:       float64(c.RedCards) / n,
		PlayTime:       float64(c.PlayTime) / n,
	}
}

// Efficiency is goals plus assists minus turnovers.
func Efficiency(r Rollup) int {
	return r.Stats.Goals + r.Stats.Assists - r.Stats.Turnovers
}

// SortKeys lists the keys accepted by SortRollups.
var SortKeys = []string{"goals", "assists", "saves", "efficiency", "playTime"}

// SortRollups orders rollups descending by key. Unknown keys sort by goals.
// Ties keep their input order.
func SortRollups(rollups []Rollup, key string) []Rollup {
	value := func(r Rollup) int {
		switch key {
		case "assists":
			return r.Stats.Assists
		case "saves":
			return r.Stats.Saves
		case "efficiency":
			return Efficiency(r)
		case "playTime":
			return r.Stats.PlayTime
		}
		return r.Stats.Goals
	}
	out := make([]Rollup, len(rollups))
	copy(out, rollups)
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i]) > value(out[j])
	})
	return out
}
