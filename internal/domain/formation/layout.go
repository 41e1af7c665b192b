package formation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
)

var ErrUnknownMode = errors.New("unknown layout mode")

// Mode selects how players are mapped onto the pitch.
type Mode string

const (
	// ModeFormation zips the normalized roster with the formation's template.
	ModeFormation Mode = "formation"
	// ModeGrid derives each position from the player's own grid hint.
	ModeGrid Mode = "grid"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeFormation:
		return ModeFormation, nil
	case ModeGrid:
		return ModeGrid, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// Placement is one player pinned to a pitch coordinate.
type Placement struct {
	Player     lineup.Player
	Coordinate Coordinate
}

// Result is the outcome of a layout pass for one team.
type Result struct {
	Mode              Mode
	Formation         string
	ResolvedFormation string
	Placements        []Placement
	Unplaced          []lineup.Player
}

// Layout places the lineup using its named formation.
//
// Unknown formations fall back to the default template. Slots are filled positionally
// and players beyond the template length are left out. Layout never fails.
func Layout(l lineup.Lineup) []Placement {
	tpl, _ := Resolve(l.Formation)
	return zip(NormalizeRoster(l.Players), tpl)
}

// LayoutWithMode runs the selected strategy and reports which players were not placed.
func LayoutWithMode(l lineup.Lineup, mode Mode) Result {
	roster := NormalizeRoster(l.Players)

	if mode == ModeGrid {
		return Result{
			Mode:              ModeGrid,
			Formation:         l.Formation,
			ResolvedFormation: l.Formation,
			Placements:        GridLayout(roster),
			Unplaced:          playersWithoutGrid(roster),
		}
	}

	tpl, resolved := Resolve(l.Formation)
	placements := zip(roster, tpl)
	return Result{
		Mode:              ModeFormation,
		Formation:         l.Formation,
		ResolvedFormation: resolved,
		Placements:        placements,
		Unplaced:          append([]lineup.Player{}, roster[len(placements):]...),
	}
}

func zip(players []lineup.Player, tpl Template) []Placement {
	n := min(len(players), len(tpl))
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Placement{Player: players[i], Coordinate: tpl[i]})
	}
	return out
}

func playersWithoutGrid(players []lineup.Player) []lineup.Player {
	out := make([]lineup.Player, 0)
	for _, p := range players {
		if !p.HasGrid() {
			out = append(out, p)
		}
	}
	return out
}
