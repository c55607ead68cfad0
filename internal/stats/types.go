package stats

import "github.com/mauv0809/handball-stats/internal/handball"

// Criterion selects the scoring formula used to rank players.
type Criterion string

const (
	CriterionBalanced  Criterion = "balanced"
	CriterionOffensive Criterion = "offensive"
	CriterionDefensive Criterion = "defensive"
	CriterionEfficient Criterion = "efficient"
)

// ParseCriterion maps a tag to a Criterion. Unknown tags fall back to balanced.
func ParseCriterion(tag string) Criterion {
	switch c := Criterion(tag); c {
	case CriterionOffensive, CriterionDefensive, CriterionEfficient:
		return c
	}
	return CriterionBalanced
}

// Averages holds per-match averages of every counter.
type Averages struct {
	Goals          float64 `json:"goals"`
	Assists        float64 `json:"assists"`
	Saves          float64 `json:"saves"`
	Turnovers      float64 `json:"turnovers"`
	ShotsOnGoal    float64 `json:"shotsOnGoal"`
	ShotsOffTarget float64 `json:"shotsOffTarget"`
	Recoveries     float64 `json:"recoveries"`
	FoulsCommitted float64 `json:"foulsCommitted"`
	FoulsReceived  float64 `json:"foulsReceived"`
	YellowCards    float64 `json:"yellowCards"`
	RedCards       float64 `json:"redCards"`
	PlayTime       float64 `json:"playTime"`
}

// Rollup aggregates one player's counters across every match played.
type Rollup struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Position     string            `json:"position"`
	Number       int               `json:"number"`
	Category     handball.Category `json:"category"`
	Matches      int               `json:"matches"`
	Stats        handball.Counters `json:"stats"`
	AverageStats Averages          `json:"averageStats"`
}

// Ranked is a rollup with the score it earned under a criterion.
type Ranked struct {
	Rollup
	Score float64 `json:"score"`
}

// Indicator tells whether the first player compares better, worse or equal.
type Indicator string

const (
	Better Indicator = "better"
	Worse  Indicator = "worse"
	Equal  Indicator = "equal"
)

// MetricComparison compares one metric between two players.
type MetricComparison struct {
	Metric        string    `json:"metric"`
	Total1        int       `json:"total1"`
	Total2        int       `json:"total2"`
	Average1      float64   `json:"average1"`
	Average2      float64   `json:"average2"`
	Share         int       `json:"share"`
	Delta         int       `json:"delta"`
	Label         string    `json:"label"`
	Indicator     Indicator `json:"indicator"`
	LowerIsBetter bool      `json:"lowerIsBetter"`
}

// Comparison is the head-to-head view of two players.
type Comparison struct {
	Player1 Rollup             `json:"player1"`
	Player2 Rollup             `json:"player2"`
	Metrics []MetricComparison `json:"metrics"`
}

// MatchRow is one entry of the match history listing.
type MatchRow struct {
	ID       int64  `json:"id"`
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Result   string `json:"result"`
}

// Summary holds the dashboard totals.
type Summary struct {
	TotalMatches  int `json:"totalMatches"`
	ActivePlayers int `json:"activePlayers"`
	TotalGoals    int `json:"totalGoals"`
}

const (
	ResultWin  = "Victoria"
	ResultLoss = "Derrota"
	ResultDraw = "Empate"

	// UnknownResult is what the match history listing reports for every match.
	UnknownResult = "???"
)
