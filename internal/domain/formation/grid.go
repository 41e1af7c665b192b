package formation

import "github.com/riskibarqy/matchboard/internal/domain/lineup"

const (
	gridMin       = 5
	gridMax       = 85
	gridOrigin    = 10
	gridColStride = 20
	gridRowStride = 15
	// Indices past this bound saturate the clamp anyway; bounding first avoids overflow.
	gridIndexBound = 1 << 16
)

// GridPosition maps a grid hint straight to a coordinate, clamped to [5, 85] on both
// axes. It is defined for every row/col pair, including out-of-range ones.
func GridPosition(g lineup.Grid) Coordinate {
	return Coordinate{
		X: float64(clamp((bound(g.Col)-1)*gridColStride+gridOrigin, gridMin, gridMax)),
		Y: float64(clamp((bound(g.Row)-1)*gridRowStride+gridOrigin, gridMin, gridMax)),
	}
}

// GridLayout places every player that carries a grid hint, in roster order.
func GridLayout(players []lineup.Player) []Placement {
	out := make([]Placement, 0, len(players))
	for _, p := range players {
		if p.Grid == nil {
			continue
		}
		out = append(out, Placement{Player: p, Coordinate: GridPosition(*p.Grid)})
	}
	return out
}

func bound(v int) int {
	return clamp(v, -gridIndexBound, gridIndexBound)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
