package handball

import "fmt"

// Stat names a counter that can be incremented during a live match.
type Stat string

const (
	StatGoals          Stat = "goals"
	StatAssists        Stat = "assists"
	StatSaves          Stat = "saves"
	StatTurnovers      Stat = "turnovers"
	StatShotsOnGoal    Stat = "shotsOnGoal"
	StatShotsOffTarget Stat = "shotsOffTarget"
	StatRecoveries     Stat = "recoveries"
	StatFoulsCommitted Stat = "foulsCommitted"
	StatFoulsReceived  Stat = "foulsReceived"
	StatYellowCards    Stat = "yellowCards"
	StatRedCards       Stat = "redCards"
)

// Stats lists every incrementable counter in display order.
var Stats = []Stat{
	StatGoals,
	StatAssists,
	StatSaves,
	StatTurnovers,
	StatShotsOnGoal,
	StatShotsOffTarget,
	StatRecoveries,
	StatFoulsCommitted,
	StatFoulsReceived,
	StatYellowCards,
	StatRedCards,
}

// ParseStat validates a counter name.
func ParseStat(name string) (Stat, error) {
	for _, s := range Stats {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown stat %q", ErrInvalidInput, name)
}

// LowerIsBetter reports whether a smaller value of s is the better one.
func (s Stat) LowerIsBetter() bool {
	switch s {
	case StatTurnovers, StatFoulsCommitted, StatYellowCards, StatRedCards:
		return true
	}
	return false
}

// Counters is the fixed set of per-match statistics. PlayTime is in seconds.
type Counters struct {
	Goals          int `json:"goals"`
	Assists        int `json:"assists"`
	Saves          int `json:"saves"`
	Turnovers      int `json:"turnovers"`
	ShotsOnGoal    int `json:"shotsOnGoal"`
	ShotsOffTarget int `json:"shotsOffTarget"`
	Recoveries     int `json:"recoveries"`
	FoulsCommitted int `json:"foulsCommitted"`
	FoulsReceived  int `json:"foulsReceived"`
	YellowCards    int `json:"yellowCards"`
	RedCards       int `json:"redCards"`
	PlayTime       int `json:"playTime"`
}

func (c *Counters) field(s Stat) *int {
	switch s {
	case StatGoals:
		return &c.Goals
	case StatAssists:
		return &c.Assists
	case StatSaves:
		return &c.Saves
	case StatTurnovers:
		return &c.Turnovers
	case StatShotsOnGoal:
		return &c.ShotsOnGoal
	case StatShotsOffTarget:
		return &c.ShotsOffTarget
	case StatRecoveries:
		return &c.Recoveries
	case StatFoulsCommitted:
		return &c.FoulsCommitted
	case StatFoulsReceived:
		return &c.FoulsReceived
	case StatYellowCards:
		return &c.YellowCards
	case StatRedCards:
		return &c.RedCards
	}
	return nil
}

// Get returns the value of s, or 0 for an unknown stat.
func (c Counters) Get(s Stat) int {
	if f := c.field(s); f != nil {
		return *f
	}
	return 0
}

// Increment adds one to s.
func (c *Counters) Increment(s Stat) error {
	f := c.field(s)
	if f == nil {
		return fmt.Errorf("%w: unknown stat %q", ErrInvalidInput, s)
	}
	*f++
	return nil
}

// Add accumulates other into c, play time included.
func (c *Counters) Add(other Counters) {
	for _, s := range Stats {
		*c.field(s) += other.Get(s)
	}
	c.PlayTime += other.PlayTime
}

// Validate rejects negative counters.
func (c Counters) Validate() error {
	for _, s := range Stats {
		if c.Get(s) < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, s)
		}
	}
	if c.PlayTime < 0 {
		return fmt.Errorf("%w: playTime cannot be negative", ErrInvalidInput)
	}
	return nil
}
