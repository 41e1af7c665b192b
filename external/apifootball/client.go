package apifootball

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/platform/resilience"
	"github.com/riskibarqy/matchboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL     = "https://api-football-v1.p.rapidapi.com/v3"
	defaultHost        = "api-football-v1.p.rapidapi.com"
	defaultTimeout     = 20 * time.Second
	maxResponseBytes   = 6 << 20
	headerRapidAPIKey  = "x-rapidapi-key"
	headerRapidAPIHost = "x-rapidapi-host"
)

var errAPIFootballTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	BaseURL        string
	Host           string
	Key            string
	Timeout        time.Duration
	MaxRetries     int
	LeagueIDs      []int64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// HTTPClient overrides the fasthttp client, mainly for tests.
	HTTPClient *fasthttp.Client
}

// Client reads today's fixtures and their lineups from API-Football.
type Client struct {
	http       *fasthttp.Client
	baseURL    string
	host       string
	key        string
	timeout    time.Duration
	maxRetries int
	leagueIDs  map[int64]struct{}
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
	apiCalls   atomic.Int64
	backoff    func(attempt int) time.Duration
	now        func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "matchboard",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBytes,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}

	leagueIDs := make(map[int64]struct{}, len(cfg.LeagueIDs))
	for _, id := range cfg.LeagueIDs {
		if id > 0 {
			leagueIDs[id] = struct{}{}
		}
	}

	return &Client{
		http:       httpClient,
		baseURL:    baseURL,
		host:       host,
		key:        strings.TrimSpace(cfg.Key),
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		leagueIDs:  leagueIDs,
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		backoff:    func(attempt int) time.Duration { return time.Duration(attempt+1) * time.Second },
		now:        time.Now,
	}
}

func (c *Client) Name() string {
	return "API-Football"
}

func (c *Client) CacheType() string {
	return cachestatus.TypeAPIFootballRefresh
}

// APICalls counts provider requests sent since the client was created, retries included.
func (c *Client) APICalls() int64 {
	return c.apiCalls.Load()
}

// FetchMatches returns today's fixtures (UTC date), restricted to the configured leagues.
func (c *Client) FetchMatches(ctx context.Context) ([]match.Match, error) {
	date := c.now().UTC().Format(time.DateOnly)

	var payload envelope[fixtureItem]
	if err := c.doJSON(ctx, "/fixtures", map[string]string{"date": date}, &payload); err != nil {
		return nil, fmt.Errorf("fetch fixtures date=%s: %w", date, err)
	}

	out := make([]match.Match, 0, len(payload.Response))
	for _, item := range payload.Response {
		if item.Fixture.ID <= 0 {
			continue
		}
		if len(c.leagueIDs) > 0 {
			if _, ok := c.leagueIDs[item.League.ID]; !ok {
				continue
			}
		}
		out = append(out, mapFixture(item))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].FixtureID < out[j].FixtureID })
	return out, nil
}

// FetchLineups returns the starting elevens of a fixture. Bench players are not placed
// on the pitch and are left out.
func (c *Client) FetchLineups(ctx context.Context, fixtureID int64) ([]lineup.Lineup, error) {
	if fixtureID <= 0 {
		return nil, fmt.Errorf("fixture id must be greater than zero")
	}

	var payload envelope[lineupItem]
	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	if err := c.doJSON(ctx, "/fixtures/lineups", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch lineups fixture_id=%d: %w", fixtureID, err)
	}

	out := make([]lineup.Lineup, 0, len(payload.Response))
	for _, item := range payload.Response {
		if strings.TrimSpace(item.Team.Name) == "" {
			continue
		}
		out = append(out, c.mapLineup(ctx, fixtureID, item))
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	fullURL := c.buildURL(path, query)
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if reqErr != nil && crerr.Is(reqErr, errAPIFootballTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode provider payload")
	}
	if msg := providerErrors(target); msg != "" {
		return crerr.Newf("provider rejected request: %s", msg)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.send(ctx, fullURL)
		switch {
		case err != nil:
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errAPIFootballTransient)
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw)), errAPIFootballTransient)
		default:
			return nil, crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("provider request failed")
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRapidAPIHost, c.host)
	if c.key != "" {
		req.Header.Set(headerRapidAPIKey, c.key)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	c.apiCalls.Add(1)
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return nil, 0, err
	}

	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

func (c *Client) buildURL(path string, query map[string]string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)

	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		if i == 0 {
			_ = buf.WriteByte('?')
		} else {
			_ = buf.WriteByte('&')
		}
		_, _ = buf.WriteString(url.QueryEscape(key))
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(url.QueryEscape(query[key]))
	}
	return buf.String()
}

func mapFixture(item fixtureItem) match.Match {
	status := match.NormalizeStatus(item.Fixture.Status.Short)
	out := match.Match{
		FixtureID:  item.Fixture.ID,
		HomeTeam:   strings.TrimSpace(item.Teams.Home.Name),
		AwayTeam:   strings.TrimSpace(item.Teams.Away.Name),
		HomeLogo:   item.Teams.Home.Logo,
		AwayLogo:   item.Teams.Away.Logo,
		HomeScore:  item.Goals.Home,
		AwayScore:  item.Goals.Away,
		Status:     status,
		Elapsed:    item.Fixture.Status.Elapsed,
		League:     strings.TrimSpace(item.League.Name),
		LeagueLogo: item.League.Logo,
		Venue:      strings.TrimSpace(item.Fixture.Venue.Name),
		IsLive:     match.IsLiveStatus(status),
	}
	if kickoff, err := time.Parse(time.RFC3339, strings.TrimSpace(item.Fixture.Date)); err == nil {
		out.KickoffAt = kickoff.UTC()
	}
	return out
}

func (c *Client) mapLineup(ctx context.Context, fixtureID int64, item lineupItem) lineup.Lineup {
	players := make([]lineup.Player, 0, len(item.StartXI))
	for _, entry := range item.StartXI {
		p := entry.Player
		player := lineup.Player{
			ExternalID: p.ID,
			Number:     p.Number,
			Name:       strings.TrimSpace(p.Name),
			Position:   strings.TrimSpace(p.Pos),
		}
		if p.Grid != nil {
			grid, err := lineup.ParseGrid(*p.Grid)
			if err != nil {
				c.logger.WarnContext(ctx, "dropping unparseable grid hint",
					"fixture_id", fixtureID,
					"player_id", p.ID,
					"grid", *p.Grid,
					"error", err,
				)
			}
			player.Grid = grid
		}
		players = append(players, player)
	}

	return lineup.Lineup{
		FixtureID: fixtureID,
		TeamName:  strings.TrimSpace(item.Team.Name),
		TeamLogo:  item.Team.Logo,
		Formation: strings.TrimSpace(item.Formation),
		Coach:     strings.TrimSpace(item.Coach.Name),
		Players:   players,
	}
}

// providerErrors reads the "errors" member, which API-Football sends as either an empty
// array or an object keyed by error type.
func providerErrors(target any) string {
	var raw any
	switch v := target.(type) {
	case *envelope[fixtureItem]:
		raw = v.Errors
	case *envelope[lineupItem]:
		raw = v.Errors
	default:
		return ""
	}

	switch errs := raw.(type) {
	case map[string]any:
		parts := make([]string, 0, len(errs))
		for key, value := range errs {
			parts = append(parts, fmt.Sprintf("%s=%v", key, value))
		}
		sort.Strings(parts)
		return strings.Join(parts, "; ")
	case []any:
		parts := make([]string, 0, len(errs))
		for _, value := range errs {
			parts = append(parts, fmt.Sprint(value))
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
