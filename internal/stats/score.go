package stats

import (
	"math"
	"sort"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// Score rates a player under criterion, rounded to one decimal.
func Score(r Rollup, criterion Criterion) float64 {
	s := r.Stats
	g, a, sv, t := float64(s.Goals), float64(s.Assists), float64(s.Saves), float64(s.Turnovers)

	var score float64
	switch criterion {
	case CriterionOffensive:
		score = 2*g + 1.5*a - 0.5*t
	case CriterionDefensive:
		score = 2*sv - 2*t + a
	case CriterionEfficient:
		hours := float64(s.PlayTime) / 3600
		score = 10*(g+a)/math.Max(t, 1) + 2*g/math.Max(hours, 1)
	default:
		score = g + a + 0.5*sv - t
	}

	if r.Position == handball.PositionGoalkeeper {
		if criterion == CriterionDefensive {
			score *= 1.5
		} else {
			score *= 0.8
		}
	}
	return round1(score)
}

// round1 rounds half up to one decimal place.
func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// Rank scores every rollup and orders them best first. Ties keep id order.
func Rank(rollups []Rollup, criterion Criterion) []Ranked {
	ranked := make([]Ranked, 0, len(rollups))
	for _, r := range rollups {
		ranked = append(ranked, Ranked{Rollup: r, Score: Score(r, criterion)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ID < ranked[j].ID })
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// lineup is the position of each slot in the best team.
var lineup = []string{
	handball.PositionGoalkeeper,
	handball.PositionBack,
	handball.PositionBack,
	handball.PositionCentre,
	handball.PositionPivot,
}

// BestTeam picks one player per lineup slot by score. A slot with no player
// of its position is filled with the best remaining player; slots are
// dropped once nobody is left.
func BestTeam(rollups []Rollup, criterion Criterion) []Ranked {
	ranked := Rank(rollups, criterion)
	used := make(map[int64]bool, len(lineup))
	slots := make([]*Ranked, len(lineup))

	for i, position := range lineup {
		for j := range ranked {
			if ranked[j].Position == position && !used[ranked[j].ID] {
				slots[i] = &ranked[j]
				used[ranked[j].ID] = true
				break
			}
		}
	}
	for i := range slots {
		if slots[i] != nil {
			continue
		}
		for j := range ranked {
			if !used[ranked[j].ID] {
				slots[i] = &ranked[j]
				used[ranked[j].ID] = true
				break
			}
		}
	}

	team := make([]Ranked, 0, len(lineup))
	for _, s := range slots {
		if s != nil {
			team = append(team, *s)
		}
	}
	return team
}
