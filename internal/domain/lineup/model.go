package lineup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidGrid = errors.New("invalid grid")

// Grid is the provider's (row, col) hint: row is the tactical line counted from the
// goalkeeper, col the lateral slot inside that line. Both are 1-indexed.
type Grid struct {
	Row int
	Col int
}

func (g Grid) String() string {
	return strconv.Itoa(g.Row) + ":" + strconv.Itoa(g.Col)
}

// Player is one member of a team sheet as received from the data source.
type Player struct {
	ExternalID int64
	Number     int
	Name       string
	Position   string
	Grid       *Grid
}

// HasGrid reports whether the source supplied a grid hint for the player.
func (p Player) HasGrid() bool {
	return p.Grid != nil
}

// Lineup is one team's sheet for a fixture. Players keep the order they were received in.
type Lineup struct {
	FixtureID int64
	TeamName  string
	TeamLogo  string
	Formation string
	Coach     string
	Players   []Player
}

func (l Lineup) Validate() error {
	if l.FixtureID <= 0 {
		return fmt.Errorf("lineup fixture id must be greater than zero")
	}
	if strings.TrimSpace(l.TeamName) == "" {
		return fmt.Errorf("lineup team name is required")
	}

	return nil
}

// Clone returns a deep copy so stored lineups never share player slices or grids.
func (l Lineup) Clone() Lineup {
	out := l
	out.Players = ClonePlayers(l.Players)
	return out
}

func ClonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = p
		if p.Grid != nil {
			g := *p.Grid
			out[i].Grid = &g
		}
	}
	return out
}

// ParseGrid parses the provider's "row:col" string. An empty or "null" value means the
// player has no grid hint and yields (nil, nil).
func ParseGrid(raw string) (*Grid, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, "null") {
		return nil, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q must be row:col", ErrInvalidGrid, raw)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: row in %q: %v", ErrInvalidGrid, raw, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: col in %q: %v", ErrInvalidGrid, raw, err)
	}
	if row < 1 || col < 1 {
		return nil, fmt.Errorf("%w: %q must use positive row and col", ErrInvalidGrid, raw)
	}

	return &Grid{Row: row, Col: col}, nil
}

// FormatGrid renders a grid back to the provider format; a missing grid renders empty.
func FormatGrid(g *Grid) string {
	if g == nil {
		return ""
	}
	return g.String()
}
