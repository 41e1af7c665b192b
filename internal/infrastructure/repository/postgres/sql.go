package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
)

// insertChunkSize keeps multi-row inserts well below the 65535 bind parameter limit.
const insertChunkSize = 500

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func intFromNull(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int32)
	return &out
}

type playerRecord struct {
	ExternalID int64  `json:"id,omitempty"`
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Grid       string `json:"grid,omitempty"`
}

func encodePlayers(players []lineup.Player) (string, error) {
	records := make([]playerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, playerRecord{
			ExternalID: p.ExternalID,
			Number:     p.Number,
			Name:       p.Name,
			Position:   p.Position,
			Grid:       lineup.FormatGrid(p.Grid),
		})
	}

	encoded, err := sonic.MarshalString(records)
	if err != nil {
		return "", fmt.Errorf("encode players: %w", err)
	}
	return encoded, nil
}

func decodePlayers(raw string) ([]lineup.Player, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []lineup.Player{}, nil
	}

	var records []playerRecord
	if err := sonic.UnmarshalString(raw, &records); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}

	out := make([]lineup.Player, 0, len(records))
	for i, r := range records {
		grid, err := lineup.ParseGrid(r.Grid)
		if err != nil {
			return nil, fmt.Errorf("decode players[%d]: %w", i, err)
		}
		out = append(out, lineup.Player{
			ExternalID: r.ExternalID,
			Number:     r.Number,
			Name:       r.Name,
			Position:   r.Position,
			Grid:       grid,
		})
	}
	return out, nil
}

func chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

func countRows(ctx context.Context, db sqlx.QueryerContext, query string, args ...any) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, db, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}
