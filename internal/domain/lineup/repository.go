package lineup

import "context"

// Repository exposes lineup persistence operations.
type Repository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]Lineup, error)
	ReplaceAll(ctx context.Context, lineups []Lineup) error
	Count(ctx context.Context) (int, error)
}
