package formation

import (
	"math"
	"testing"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/stretchr/testify/assert"
)

func TestGridPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   lineup.Grid
		want Coordinate
	}{
		{name: "origin", in: lineup.Grid{Row: 1, Col: 1}, want: Coordinate{X: 10, Y: 10}},
		{name: "clamps high", in: lineup.Grid{Row: 10, Col: 10}, want: Coordinate{X: 85, Y: 85}},
		{name: "mid pitch", in: lineup.Grid{Row: 3, Col: 2}, want: Coordinate{X: 30, Y: 40}},
		{name: "clamps low", in: lineup.Grid{Row: 0, Col: 0}, want: Coordinate{X: 5, Y: 5}},
		{name: "negative", in: lineup.Grid{Row: -4, Col: -7}, want: Coordinate{X: 5, Y: 5}},
		{name: "huge", in: lineup.Grid{Row: math.MaxInt, Col: math.MaxInt}, want: Coordinate{X: 85, Y: 85}},
		{name: "most negative", in: lineup.Grid{Row: math.MinInt, Col: math.MinInt}, want: Coordinate{X: 5, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GridPosition(tt.in))
		})
	}
}

func TestGridLayout_FollowsRosterOrder(t *testing.T) {
	t.Parallel()

	got := GridLayout([]lineup.Player{
		{Number: 1, Grid: grid(1, 1)},
		{Number: 4, Grid: grid(2, 3)},
	})

	assert.Equal(t, []Placement{
		{Player: lineup.Player{Number: 1, Grid: grid(1, 1)}, Coordinate: Coordinate{X: 10, Y: 10}},
		{Player: lineup.Player{Number: 4, Grid: grid(2, 3)}, Coordinate: Coordinate{X: 50, Y: 25}},
	}, got)
}
