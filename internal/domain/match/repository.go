package match

import "context"

// Repository stores the scoreboard's matches.
type Repository interface {
	ListLive(ctx context.Context) ([]Match, error)
	ListByKickoff(ctx context.Context) ([]Match, error)
	ReplaceAll(ctx context.Context, items []Match) error
	Count(ctx context.Context) (int, error)
	CountLive(ctx context.Context) (int, error)
}
