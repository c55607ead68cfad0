package stats

import (
	"fmt"
	"math"

	"github.com/mauv0809/handball-stats/internal/handball"
)

const metricEfficiency = "efficiency"

// Compare builds the head-to-head comparison of two players.
func Compare(p1, p2 Rollup) Comparison {
	c := Comparison{Player1: p1, Player2: p2}
	for _, s := range handball.Stats {
		c.Metrics = append(c.Metrics, compareMetric(string(s), p1.Stats.Get(s), p2.Stats.Get(s), p1.Matches, p2.Matches, s.LowerIsBetter()))
	}
	c.Metrics = append(c.Metrics,
		compareMetric("playTime", p1.Stats.PlayTime, p2.Stats.PlayTime, p1.Matches, p2.Matches, false),
		compareMetric(metricEfficiency, Efficiency(p1), Efficiency(p2), p1.Matches, p2.Matches, false),
	)
	return c
}

func compareMetric(name string, v1, v2, m1, m2 int, lowerIsBetter bool) MetricComparison {
	delta := v1 - v2
	return MetricComparison{
		Metric:        name,
		Total1:        v1,
		Total2:        v2,
		Average1:      average(v1, m1),
		Average2:      average(v2, m2),
		Share:         Share(v1, v2),
		Delta:         delta,
		Label:         DeltaLabel(v1, v2),
		Indicator:     indicator(v1, v2, lowerIsBetter),
		LowerIsBetter: lowerIsBetter,
	}
}

func average(total, matches int) float64 {
	if matches == 0 {
		return 0
	}
	return float64(total) / float64(matches)
}

// Share is the first player's percentage of the combined value.
func Share(v1, v2 int) int {
	if v1 == 0 && v2 == 0 {
		return 50
	}
	if v2 == 0 {
		return 100
	}
	if v1+v2 == 0 {
		return 50
	}
	return int(math.Floor(float64(v1)/float64(v1+v2)*100 + 0.5))
}

// DeltaLabel renders the difference as "+n", "-n" or "Igual".
func DeltaLabel(v1, v2 int) string {
	switch {
	case v1 > v2:
		return fmt.Sprintf("+%d", v1-v2)
	case v1 < v2:
		return fmt.Sprintf("-%d", v2-v1)
	}
	return "Igual"
}

func indicator(v1, v2 int, lowerIsBetter bool) Indicator {
	if v1 == v2 {
		return Equal
	}
	if (v1 > v2) != lowerIsBetter {
		return Better
	}
	return Worse
}
