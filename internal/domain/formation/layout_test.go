package formation

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(row, col int) *lineup.Grid {
	return &lineup.Grid{Row: row, Col: col}
}

// squad433 is a 4-3-3 team sheet in the shuffled order a provider may send it.
func squad433() []lineup.Player {
	return []lineup.Player{
		{Number: 9, Name: "Karim Benzema", Position: "ST", Grid: grid(4, 2)},
		{Number: 2, Name: "Dani Carvajal", Position: "RB", Grid: grid(2, 1)},
		{Number: 21, Name: "Rodrygo", Position: "RW", Grid: grid(4, 3)},
		{Number: 3, Name: "Eder Militao", Position: "CB", Grid: grid(2, 2)},
		{Number: 14, Name: "Casemiro", Position: "CDM", Grid: grid(3, 1)},
		{Number: 1, Name: "Thibaut Courtois", Position: "GK", Grid: grid(1, 1)},
		{Number: 4, Name: "David Alaba", Position: "CB", Grid: grid(2, 3)},
		{Number: 10, Name: "Luka Modric", Position: "CM", Grid: grid(3, 2)},
		{Number: 23, Name: "Ferland Mendy", Position: "LB", Grid: grid(2, 4)},
		{Number: 8, Name: "Toni Kroos", Position: "CM", Grid: grid(3, 3)},
		{Number: 20, Name: "Vinicius Jr.", Position: "LW", Grid: grid(4, 1)},
	}
}

func rosterOf(n int) []lineup.Player {
	out := make([]lineup.Player, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, lineup.Player{Number: i + 1, Name: fmt.Sprintf("player-%d", i+1)})
	}
	return out
}

func TestLayout_433Scenario(t *testing.T) {
	t.Parallel()

	got := Layout(lineup.Lineup{TeamName: "Real Madrid", Formation: Name433, Players: squad433()})

	require.Len(t, got, 11)
	assert.Equal(t, "Thibaut Courtois", got[0].Player.Name)
	assert.Equal(t, Coordinate{X: 50, Y: 10}, got[0].Coordinate)
	assert.Equal(t, "Rodrygo", got[10].Player.Name)
	assert.Equal(t, Coordinate{X: 80, Y: 80}, got[10].Coordinate)

	wantOrder := []int{1, 2, 3, 4, 23, 14, 10, 8, 20, 9, 21}
	for i, p := range got {
		assert.Equal(t, wantOrder[i], p.Player.Number, "slot %d", i)
	}
}

func TestLayout_EveryRegisteredFormationPlacesElevenInsidePitch(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Layout(lineup.Lineup{Formation: name, Players: squad433()})
			require.Len(t, got, 11)

			tpl, ok := Lookup(name)
			require.True(t, ok)
			for i, p := range got {
				assert.Equal(t, tpl[i], p.Coordinate)
				assert.GreaterOrEqual(t, p.Coordinate.X, 0.0)
				assert.LessOrEqual(t, p.Coordinate.X, 100.0)
				assert.GreaterOrEqual(t, p.Coordinate.Y, 0.0)
				assert.LessOrEqual(t, p.Coordinate.Y, 100.0)
			}
			assert.Equal(t, Coordinate{X: 50, Y: 10}, got[0].Coordinate, "goalkeeper slot first")
			for i := 2; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i].Coordinate.Y, got[i-1].Coordinate.Y,
					"slots must run goalkeeper to attack")
			}
		})
	}
}

func TestLayout_UnknownFormationFallsBackToDefault(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 5, 11, 14} {
		got := Layout(lineup.Lineup{Formation: "9-1-0", Players: rosterOf(size)})
		require.Len(t, got, min(11, size))

		def := DefaultTemplate()
		for i, p := range got {
			assert.Equal(t, def[i], p.Coordinate)
		}
	}
}

func TestLayout_FormationMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("4-3-3 ")
	assert.False(t, ok)

	result := LayoutWithMode(lineup.Lineup{Formation: "4-3-3 ", Players: rosterOf(11)}, ModeFormation)
	assert.Equal(t, NameDefault, result.ResolvedFormation)
}

func TestLayout_DropsSurplusPlayers(t *testing.T) {
	t.Parallel()

	players := rosterOf(14)
	got := Layout(lineup.Lineup{Formation: Name442, Players: players})
	require.Len(t, got, 11)
	for _, p := range got {
		assert.NotContains(t, []int{12, 13, 14}, p.Player.Number)
	}

	result := LayoutWithMode(lineup.Lineup{Formation: Name442, Players: players}, ModeFormation)
	require.Len(t, result.Unplaced, 3)
	assert.Equal(t, 12, result.Unplaced[0].Number)
}

func TestLayout_PartialRosterZipsPositionally(t *testing.T) {
	t.Parallel()

	got := Layout(lineup.Lineup{Formation: Name352, Players: rosterOf(6)})
	tpl, _ := Lookup(Name352)

	require.Len(t, got, 6)
	assert.Equal(t, tpl[5], got[5].Coordinate)
}

func TestLayout_EmptyRosterYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	got := Layout(lineup.Lineup{Formation: Name433})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLayout_IsDeterministic(t *testing.T) {
	t.Parallel()

	in := lineup.Lineup{Formation: Name4231, Players: squad433()}
	first := Layout(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Layout(in))
	}
}

func TestLayout_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	players := squad433()
	before := lineup.ClonePlayers(players)
	_ = Layout(lineup.Lineup{Formation: Name433, Players: players})
	assert.Equal(t, before, players)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	tpl, ok := Lookup(Name433)
	require.True(t, ok)
	tpl[0] = Coordinate{X: 0, Y: 0}

	again, _ := Lookup(Name433)
	assert.Equal(t, Coordinate{X: 50, Y: 10}, again[0])
}

func TestTemplates_HaveElevenSlots(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		tpl, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Len(t, tpl, 11, name)
	}
	assert.Len(t, DefaultTemplate(), 11)
	assert.Len(t, Names(), 6)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeFormation, mode)

	mode, err = ParseMode(" GRID ")
	require.NoError(t, err)
	assert.Equal(t, ModeGrid, mode)

	_, err = ParseMode("radar")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestLayoutWithMode_GridSkipsPlayersWithoutGrid(t *testing.T) {
	t.Parallel()

	players := []lineup.Player{
		{Number: 7, Name: "no grid"},
		{Number: 1, Name: "keeper", Grid: grid(1, 1)},
	}

	result := LayoutWithMode(lineup.Lineup{Formation: Name433, Players: players}, ModeGrid)
	require.Len(t, result.Placements, 1)
	assert.Equal(t, Coordinate{X: 10, Y: 10}, result.Placements[0].Coordinate)
	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, 7, result.Unplaced[0].Number)
	assert.Equal(t, ModeGrid, result.Mode)
}
