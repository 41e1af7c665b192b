package pitchcli

import (
	"strings"
	"testing"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineups(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		teams   []string
		wantErr string
	}{
		{
			name:  "single team sheet",
			input: "team_name: Spurs\nformation: 4-3-3\nplayers: []\n",
			teams: []string{"Spurs"},
		},
		{
			name:  "list of team sheets",
			input: "lineups:\n  - team_name: Home\n  - team_name: Away\n",
			teams: []string{"Home", "Away"},
		},
		{
			name:    "no team sheet",
			input:   "formation: 4-3-3\n",
			wantErr: "no team sheet",
		},
		{
			name:    "missing team name in list",
			input:   "lineups:\n  - formation: 4-3-3\n",
			wantErr: "team_name is required",
		},
		{
			name:    "unknown field",
			input:   "team_name: Spurs\nmanager: Someone\n",
			wantErr: "decode lineup file",
		},
		{
			name:    "bad grid",
			input:   "team_name: Spurs\nplayers:\n  - number: 1\n    name: A\n    grid: \"x:1\"\n",
			wantErr: "players[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLineups(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, l := range got {
				names = append(names, l.TeamName)
			}
			assert.Equal(t, tt.teams, names)
		})
	}
}

func TestReadLineups_BadGridWrapsSentinel(t *testing.T) {
	_, err := readLineups(strings.NewReader("team_name: Spurs\nplayers:\n  - grid: \"1\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lineup.ErrInvalidGrid)
}

func TestToPlayerDoc_FormatsGrid(t *testing.T) {
	doc := toPlayerDoc(lineup.Player{Number: 9, Name: "Kane", Grid: &lineup.Grid{Row: 4, Col: 1}})
	require.NotNil(t, doc.Grid)
	assert.Equal(t, "4:1", *doc.Grid)

	assert.Nil(t, toPlayerDoc(lineup.Player{Number: 1}).Grid)
}
