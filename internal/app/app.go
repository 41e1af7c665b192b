package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/matchboard/external/apifootball"
	"github.com/riskibarqy/matchboard/internal/config"
	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	cacherepo "github.com/riskibarqy/matchboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchboard/internal/platform/cache"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/platform/resilience"
	"github.com/riskibarqy/matchboard/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

// App holds the HTTP server and the resources it owns.
type App struct {
	Server  *http.Server
	Refresh *usecase.RefreshService

	logger         *logging.Logger
	refreshOnStart bool
	db             *sqlx.DB
}

type repositories struct {
	matches match.Repository
	lineups lineup.Repository
	status  cachestatus.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, db, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		repos = repositories{
			matches: cacherepo.NewMatchRepository(repos.matches, store),
			lineups: cacherepo.NewLineupRepository(repos.lineups, store),
			status:  cacherepo.NewCacheStatusRepository(repos.status, store),
		}
	}

	source := newMatchSource(cfg, logger)
	refreshSvc := usecase.NewRefreshService(source, repos.matches, repos.lineups, repos.status, usecase.RefreshServiceConfig{
		Workers: cfg.RefreshWorkers,
		Logger:  logger,
	})

	handler := httpapi.NewHandler(
		usecase.NewMatchService(repos.matches),
		usecase.NewLineupService(repos.lineups),
		refreshSvc,
		usecase.NewCacheStatusService(repos.matches, repos.status, store),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Refresh:        refreshSvc,
		logger:         logger,
		refreshOnStart: cfg.RefreshOnStart,
		db:             db,
	}, nil
}

// Bootstrap seeds storage from the configured source when REFRESH_ON_START is set.
// A failed refresh is logged and the server keeps serving whatever is stored.
func (a *App) Bootstrap(ctx context.Context) {
	if !a.refreshOnStart {
		return
	}

	result, err := a.Refresh.Refresh(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "startup refresh failed", "error", err)
		return
	}
	a.logger.InfoContext(ctx, "startup refresh finished",
		"run_id", result.RunID,
		"matches", result.MatchesCount,
		"lineups", result.LineupsCount,
	)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		logger.Info("using in-memory storage")
		return repositories{
			matches: memory.NewMatchRepository(nil),
			lineups: memory.NewLineupRepository(nil),
			status:  memory.NewCacheStatusRepository(),
		}, nil, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("using postgres storage", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		matches: postgres.NewMatchRepository(db),
		lineups: postgres.NewLineupRepository(db),
		status:  postgres.NewCacheStatusRepository(db),
	}, db, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbName := dbNameFromURL(cfg.DBURL)
	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary), opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), db.Close())
	}

	otelsql.ReportDBStatsMetrics(db.DB, opts...)
	return db, nil
}

func newMatchSource(cfg config.Config, logger *logging.Logger) usecase.MatchSource {
	if cfg.MatchSource != config.SourceAPIFootball {
		return usecase.NewStaticMatchSource(memory.SeedMatches(), memory.SeedLineups())
	}

	return apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		Host:       cfg.APIFootballHost,
		Key:        cfg.APIFootballKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		LeagueIDs:  cfg.APIFootballLeagueIDs,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})
}
