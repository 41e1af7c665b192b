package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    *Grid
		wantErr bool
	}{
		{name: "goalkeeper", raw: "1:1", want: &Grid{Row: 1, Col: 1}},
		{name: "trims spaces", raw: " 4 : 3 ", want: &Grid{Row: 4, Col: 3}},
		{name: "empty means absent", raw: "", want: nil},
		{name: "null means absent", raw: "null", want: nil},
		{name: "wrong arity", raw: "1:2:3", wantErr: true},
		{name: "single value", raw: "3", wantErr: true},
		{name: "non numeric", raw: "a:1", wantErr: true},
		{name: "zero row", raw: "0:1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGrid(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGrid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineupClone_DoesNotShareGrids(t *testing.T) {
	t.Parallel()

	original := Lineup{
		FixtureID: 1,
		TeamName:  "Real Madrid",
		Players:   []Player{{Number: 1, Name: "Thibaut Courtois", Grid: &Grid{Row: 1, Col: 1}}},
	}

	copied := original.Clone()
	copied.Players[0].Grid.Row = 9
	copied.Players[0].Name = "changed"

	assert.Equal(t, 1, original.Players[0].Grid.Row)
	assert.Equal(t, "Thibaut Courtois", original.Players[0].Name)
}

func TestFormatGrid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2:4", FormatGrid(&Grid{Row: 2, Col: 4}))
	assert.Equal(t, "", FormatGrid(nil))
}
