package handball

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineup(starters, subs int) []Selection {
	out := make([]Selection, 0, starters+subs)
	for i := 0; i < starters+subs; i++ {
		out = append(out, Selection{ID: int64(i + 1), Starter: i < starters})
	}
	return out
}

func TestValidateLineup(t *testing.T) {
	tests := []struct {
		name     string
		selected []Selection
		wantErr  bool
	}{
		{"full squad", lineup(5, 9), false},
		{"four starters", lineup(4, 10), true},
		{"six starters", lineup(6, 8), true},
		{"short bench", lineup(5, 8), true},
		{"too many players", lineup(5, 10), true},
		{"empty", nil, true},
		{"duplicate player", append(lineup(5, 8), Selection{ID: 6}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLineup(tt.selected)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
