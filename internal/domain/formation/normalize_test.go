package formation

import (
	"testing"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/stretchr/testify/assert"
)

func numbers(players []lineup.Player) []int {
	out := make([]int, 0, len(players))
	for _, p := range players {
		out = append(out, p.Number)
	}
	return out
}

func TestNormalizeRoster_SortsByRowThenCol(t *testing.T) {
	t.Parallel()

	got := NormalizeRoster([]lineup.Player{
		{Number: 9, Grid: grid(3, 1)},
		{Number: 3, Grid: grid(2, 2)},
		{Number: 1, Grid: grid(1, 1)},
		{Number: 2, Grid: grid(2, 1)},
	})

	assert.Equal(t, []int{1, 2, 3, 9}, numbers(got))
}

func TestNormalizeRoster_IsStableForEqualGrids(t *testing.T) {
	t.Parallel()

	got := NormalizeRoster([]lineup.Player{
		{Number: 5, Grid: grid(2, 1)},
		{Number: 4, Grid: grid(2, 1)},
		{Number: 1, Grid: grid(1, 1)},
	})

	assert.Equal(t, []int{1, 5, 4}, numbers(got))
}

func TestNormalizeRoster_KeepsGridlessOrder(t *testing.T) {
	t.Parallel()

	in := []lineup.Player{{Number: 8}, {Number: 3}, {Number: 6}}
	assert.Equal(t, []int{8, 3, 6}, numbers(NormalizeRoster(in)))
}

func TestNormalizeRoster_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []lineup.Player{{Number: 2, Grid: grid(2, 1)}, {Number: 1, Grid: grid(1, 1)}}
	_ = NormalizeRoster(in)
	assert.Equal(t, []int{2, 1}, numbers(in))
}

func TestNormalizeRoster_NilInput(t *testing.T) {
	t.Parallel()

	got := NormalizeRoster(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
