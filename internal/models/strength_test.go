package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavourite(t *testing.T) {
	tests := []struct {
		name     string
		strength StrengthResult
		want     int
	}{
		{
			name:     "team1 stronger",
			strength: StrengthResult{Team1Raw: 0.6, Team2Raw: 0.4},
			want:     1,
		},
		{
			name:     "team2 stronger",
			strength: StrengthResult{Team1Raw: 0.45, Team2Raw: 0.55},
			want:     2,
		},
		{
			name:     "dead heat",
			strength: StrengthResult{Team1Raw: 0.5, Team2Raw: 0.5},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.strength.Favourite())
		})
	}
}
