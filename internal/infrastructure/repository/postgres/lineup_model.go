package postgres

import (
	"fmt"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
)

type lineupTableModel struct {
	ID        int64     `db:"id"`
	FixtureID int64     `db:"fixture_id"`
	TeamOrder int       `db:"team_order"`
	TeamName  string    `db:"team_name"`
	TeamLogo  string    `db:"team_logo"`
	Formation string    `db:"formation"`
	Coach     string    `db:"coach"`
	Players   string    `db:"players"`
	CreatedAt time.Time `db:"created_at"`
}

type lineupInsertModel struct {
	FixtureID int64  `db:"fixture_id"`
	TeamOrder int    `db:"team_order"`
	TeamName  string `db:"team_name"`
	TeamLogo  string `db:"team_logo"`
	Formation string `db:"formation"`
	Coach     string `db:"coach"`
	Players   string `db:"players"`
}

func (m lineupTableModel) toDomain() (lineup.Lineup, error) {
	players, err := decodePlayers(m.Players)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("lineup id=%d: %w", m.ID, err)
	}

	return lineup.Lineup{
		FixtureID: m.FixtureID,
		TeamName:  m.TeamName,
		TeamLogo:  m.TeamLogo,
		Formation: m.Formation,
		Coach:     m.Coach,
		Players:   players,
	}, nil
}

// newLineupInsertModels numbers teams per fixture so reads return them in stored order.
func newLineupInsertModels(items []lineup.Lineup) ([]lineupInsertModel, error) {
	order := make(map[int64]int, len(items))
	out := make([]lineupInsertModel, 0, len(items))
	for _, item := range items {
		players, err := encodePlayers(item.Players)
		if err != nil {
			return nil, fmt.Errorf("lineup fixture_id=%d team=%s: %w", item.FixtureID, item.TeamName, err)
		}

		out = append(out, lineupInsertModel{
			FixtureID: item.FixtureID,
			TeamOrder: order[item.FixtureID],
			TeamName:  item.TeamName,
			TeamLogo:  item.TeamLogo,
			Formation: item.Formation,
			Coach:     item.Coach,
			Players:   players,
		})
		order[item.FixtureID]++
	}
	return out, nil
}
