package pitchcli

import (
	"fmt"
	"io"
	"strings"

	"github.com/riskibarqy/matchboard/internal/domain/formation"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"gopkg.in/yaml.v3"
)

// lineupFile accepts either a single team sheet or a `lineups:` list. JSON input parses
// the same way since it is valid YAML.
type lineupFile struct {
	Lineups   []lineupDoc `yaml:"lineups"`
	lineupDoc `yaml:",inline"`
}

type lineupDoc struct {
	TeamName  string      `yaml:"team_name"`
	TeamLogo  string      `yaml:"team_logo,omitempty"`
	Formation string      `yaml:"formation"`
	Coach     string      `yaml:"coach,omitempty"`
	Players   []playerDoc `yaml:"players"`
}

type playerDoc struct {
	Number   int     `yaml:"number" json:"number"`
	Name     string  `yaml:"name" json:"name"`
	Position string  `yaml:"position" json:"position"`
	Grid     *string `yaml:"grid" json:"grid"`
}

type layoutDoc struct {
	TeamName          string         `yaml:"team_name" json:"team_name"`
	Formation         string         `yaml:"formation" json:"formation"`
	ResolvedFormation string         `yaml:"resolved_formation" json:"resolved_formation"`
	Mode              string         `yaml:"mode" json:"mode"`
	Placements        []placementDoc `yaml:"placements" json:"placements"`
	Unplaced          []playerDoc    `yaml:"unplaced,omitempty" json:"unplaced,omitempty"`
}

type placementDoc struct {
	playerDoc `yaml:",inline"`
	X         float64 `yaml:"x" json:"x_percent"`
	Y         float64 `yaml:"y" json:"y_percent"`
}

type formationDoc struct {
	Name  string    `yaml:"name" json:"name"`
	Slots []slotDoc `yaml:"slots" json:"slots"`
}

type slotDoc struct {
	X float64 `yaml:"x" json:"x_percent"`
	Y float64 `yaml:"y" json:"y_percent"`
}

func readLineups(r io.Reader) ([]lineup.Lineup, error) {
	var doc lineupFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("lineup file is empty")
		}
		return nil, fmt.Errorf("decode lineup file: %w", err)
	}

	docs := doc.Lineups
	if len(docs) == 0 && strings.TrimSpace(doc.TeamName) != "" {
		docs = []lineupDoc{doc.lineupDoc}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("lineup file has no team sheet")
	}

	out := make([]lineup.Lineup, 0, len(docs))
	for i, item := range docs {
		if strings.TrimSpace(item.TeamName) == "" {
			return nil, fmt.Errorf("lineups[%d]: team_name is required", i)
		}

		players := make([]lineup.Player, 0, len(item.Players))
		for j, p := range item.Players {
			player := lineup.Player{
				Number:   p.Number,
				Name:     strings.TrimSpace(p.Name),
				Position: strings.TrimSpace(p.Position),
			}
			if p.Grid != nil {
				grid, err := lineup.ParseGrid(*p.Grid)
				if err != nil {
					return nil, fmt.Errorf("lineups[%d].players[%d]: %w", i, j, err)
				}
				player.Grid = grid
			}
			players = append(players, player)
		}

		out = append(out, lineup.Lineup{
			TeamName:  strings.TrimSpace(item.TeamName),
			TeamLogo:  strings.TrimSpace(item.TeamLogo),
			Formation: strings.TrimSpace(item.Formation),
			Coach:     strings.TrimSpace(item.Coach),
			Players:   players,
		})
	}
	return out, nil
}

func toLayoutDoc(l lineup.Lineup, result formation.Result) layoutDoc {
	placements := make([]placementDoc, 0, len(result.Placements))
	for _, p := range result.Placements {
		placements = append(placements, placementDoc{
			playerDoc: toPlayerDoc(p.Player),
			X:         p.Coordinate.X,
			Y:         p.Coordinate.Y,
		})
	}

	unplaced := make([]playerDoc, 0, len(result.Unplaced))
	for _, p := range result.Unplaced {
		unplaced = append(unplaced, toPlayerDoc(p))
	}

	return layoutDoc{
		TeamName:          l.TeamName,
		Formation:         result.Formation,
		ResolvedFormation: result.ResolvedFormation,
		Mode:              string(result.Mode),
		Placements:        placements,
		Unplaced:          unplaced,
	}
}

func toPlayerDoc(p lineup.Player) playerDoc {
	out := playerDoc{Number: p.Number, Name: p.Name, Position: p.Position}
	if p.Grid != nil {
		grid := lineup.FormatGrid(p.Grid)
		out.Grid = &grid
	}
	return out
}

func formationDocs() []formationDoc {
	names := append(formation.Names(), formation.NameDefault)
	out := make([]formationDoc, 0, len(names))
	for _, name := range names {
		tpl, _ := formation.Resolve(name)
		slots := make([]slotDoc, 0, len(tpl))
		for _, c := range tpl {
			slots = append(slots, slotDoc{X: c.X, Y: c.Y})
		}
		out = append(out, formationDoc{Name: name, Slots: slots})
	}
	return out
}
