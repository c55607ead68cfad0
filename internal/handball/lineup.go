package handball

import "fmt"

const (
	// LineupStarters is how many players a match starts with on court.
	LineupStarters = 5
	// LineupSubstitutes is how many players a match starts with on the bench.
	LineupSubstitutes = 9
	// MaxSquad caps how many players can be called up for one match.
	MaxSquad = 14
)

// ValidateLineup checks a match call-up before it is submitted. The server
// accepts any selection; this is the guard the setup flow applies.
func ValidateLineup(selected []Selection) error {
	if len(selected) > MaxSquad {
		return fmt.Errorf("%w: at most %d players can be selected, got %d", ErrInvalidInput, MaxSquad, len(selected))
	}
	seen := make(map[int64]bool, len(selected))
	starters := 0
	for _, s := range selected {
		if seen[s.ID] {
			return fmt.Errorf("%w: player %d selected twice", ErrInvalidInput, s.ID)
		}
		seen[s.ID] = true
		if s.Starter {
			starters++
		}
	}
	if starters != LineupStarters {
		return fmt.Errorf("%w: exactly %d starters are required, got %d", ErrInvalidInput, LineupStarters, starters)
	}
	if subs := len(selected) - starters; subs != LineupSubstitutes {
		return fmt.Errorf("%w: exactly %d substitutes are required, got %d", ErrInvalidInput, LineupSubstitutes, subs)
	}
	return nil
}
