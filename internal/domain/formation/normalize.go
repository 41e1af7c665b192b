package formation

import (
	"sort"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
)

// NormalizeRoster orders players goalkeeper to attack using their grid hints.
//
// Players are stable-sorted by (row, col). A player without a grid compares equal to
// every other player, so grid-less players keep their relative input order. The input
// slice is left untouched.
func NormalizeRoster(players []lineup.Player) []lineup.Player {
	out := lineup.ClonePlayers(players)
	if out == nil {
		return []lineup.Player{}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return gridLess(out[i].Grid, out[j].Grid)
	})
	return out
}

func gridLess(a, b *lineup.Grid) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
