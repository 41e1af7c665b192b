package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/platform/id"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultRefreshWorkers = 4
	refreshFlightKey      = "refresh"
)

type RefreshServiceConfig struct {
	Workers int
	Logger  *logging.Logger
	IDGen   id.Generator
}

// RefreshResult summarizes one refresh run. Shared is set when the caller joined a run
// that was already in progress.
type RefreshResult struct {
	RunID         string
	CacheType     string
	MatchesCount  int
	LineupsCount  int
	FailedLineups int
	APICallsMade  int
	LastUpdated   time.Time
	Message       string
	Shared        bool
}

// RefreshService replaces stored matches and lineups with the source's current data.
type RefreshService struct {
	source     MatchSource
	matchRepo  match.Repository
	lineupRepo lineup.Repository
	statusRepo cachestatus.Repository
	workers    int
	logger     *logging.Logger
	idGen      id.Generator
	flight     resilience.SingleFlight
	now        func() time.Time
}

func NewRefreshService(
	source MatchSource,
	matchRepo match.Repository,
	lineupRepo lineup.Repository,
	statusRepo cachestatus.Repository,
	cfg RefreshServiceConfig,
) *RefreshService {
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultRefreshWorkers
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	idGen := cfg.IDGen
	if idGen == nil {
		idGen = id.NewPrefixedGenerator("refresh")
	}

	return &RefreshService{
		source:     source,
		matchRepo:  matchRepo,
		lineupRepo: lineupRepo,
		statusRepo: statusRepo,
		workers:    workers,
		logger:     logger,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Refresh runs at most one refresh at a time; concurrent callers share the running result.
func (s *RefreshService) Refresh(ctx context.Context) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.Refresh", attribute.String("cache_type", s.source.CacheType()))
	defer span.End()

	out, err, shared := s.flight.Do(refreshFlightKey, func() (any, error) {
		return s.run(ctx)
	})
	if err != nil {
		recordSpanError(span, err)
		return RefreshResult{}, err
	}

	result, _ := out.(RefreshResult)
	result.Shared = shared
	return result, nil
}

func (s *RefreshService) run(ctx context.Context) (RefreshResult, error) {
	runID, err := s.idGen.NewID()
	if err != nil {
		return RefreshResult{}, fmt.Errorf("generate refresh run id: %w", err)
	}
	logger := s.logger.With("run_id", runID, "cache_type", s.source.CacheType())
	start := s.now()
	callsBefore := s.apiCalls()

	matches, err := s.source.FetchMatches(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("fetch matches from %s: %w", s.source.Name(), err)
	}

	updatedAt := s.now().UTC()
	for i := range matches {
		matches[i].Status = match.NormalizeStatus(matches[i].Status)
		matches[i].UpdatedAt = updatedAt
	}

	lineups, failed, err := s.fetchLineups(ctx, logger, matches)
	if err != nil {
		return RefreshResult{}, err
	}

	if err := s.matchRepo.ReplaceAll(ctx, matches); err != nil {
		return RefreshResult{}, fmt.Errorf("replace matches: %w", err)
	}
	if err := s.lineupRepo.ReplaceAll(ctx, lineups); err != nil {
		return RefreshResult{}, fmt.Errorf("replace lineups: %w", err)
	}

	status := cachestatus.Status{
		CacheType:    s.source.CacheType(),
		LastUpdated:  updatedAt,
		TotalMatches: len(matches),
		APICallsMade: int(s.apiCalls() - callsBefore),
	}
	if err := s.statusRepo.Upsert(ctx, status); err != nil {
		return RefreshResult{}, fmt.Errorf("upsert cache status: %w", err)
	}

	logger.InfoContext(ctx, "refresh completed",
		"matches", len(matches),
		"lineups", len(lineups),
		"failed_lineups", failed,
		"api_calls", status.APICallsMade,
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)

	return RefreshResult{
		RunID:         runID,
		CacheType:     status.CacheType,
		MatchesCount:  len(matches),
		LineupsCount:  len(lineups),
		FailedLineups: failed,
		APICallsMade:  status.APICallsMade,
		LastUpdated:   updatedAt,
		Message:       fmt.Sprintf("Database refreshed with %s! Loaded %d matches.", s.source.Name(), len(matches)),
	}, nil
}

// fetchLineups loads lineups per fixture on a bounded worker pool. A fixture whose lineups
// fail to load is skipped and counted; the run only fails when the context ends.
func (s *RefreshService) fetchLineups(ctx context.Context, logger *logging.Logger, matches []match.Match) ([]lineup.Lineup, int, error) {
	if len(matches) == 0 {
		return []lineup.Lineup{}, 0, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(matches)))
	if err != nil {
		return nil, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu        sync.Mutex
		failed    int
		byFixture = make(map[int64][]lineup.Lineup, len(matches))
		workers   sync.WaitGroup
	)

	for _, item := range matches {
		fixtureID := item.FixtureID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, fetchErr := s.source.FetchLineups(ctx, fixtureID)
			if fetchErr == nil {
				items, fetchErr = validLineups(fixtureID, items)
			}

			mu.Lock()
			defer mu.Unlock()
			if fetchErr != nil {
				failed++
				logger.WarnContext(ctx, "fetch lineups failed, continuing without them", "fixture_id", fixtureID, "error", fetchErr)
				return
			}
			byFixture[fixtureID] = items
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, 0, fmt.Errorf("submit lineup fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	fixtureIDs := make([]int64, 0, len(byFixture))
	for fixtureID := range byFixture {
		fixtureIDs = append(fixtureIDs, fixtureID)
	}
	sort.Slice(fixtureIDs, func(i, j int) bool { return fixtureIDs[i] < fixtureIDs[j] })

	out := make([]lineup.Lineup, 0, len(byFixture)*2)
	for _, fixtureID := range fixtureIDs {
		out = append(out, byFixture[fixtureID]...)
	}
	return out, failed, nil
}

func validLineups(fixtureID int64, items []lineup.Lineup) ([]lineup.Lineup, error) {
	out := make([]lineup.Lineup, 0, len(items))
	for _, item := range items {
		item.FixtureID = fixtureID
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("lineup for fixture %d: %w", fixtureID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *RefreshService) apiCalls() int64 {
	if counter, ok := s.source.(apiCallCounter); ok {
		return counter.APICalls()
	}
	return 0
}
