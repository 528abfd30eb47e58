// Package steam is the raw client for the three Steam Web API endpoints the
// service ever calls: match history by account, match detail by id, and the
// hero catalogue. No retries, no caching, no rate limiting here.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Endpoint paths, relative to the API base URL.
// More info: https://wiki.teamfortress.com/wiki/WebAPI/GetMatchHistory
const (
	matchHistoryPath = "/IDOTA2Match_570/GetMatchHistory/v1"
	matchDetailsPath = "/IDOTA2Match_570/GetMatchDetails/v1"
	allHeroesPath    = "/IEconDOTA2_570/GetHeroes/v1"
)

const defaultBaseURL = "http://api.steampowered.com"

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dota_upstream_requests_total",
		Help: "Total number of Steam Web API requests by endpoint",
	}, []string{"endpoint"})

	upstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dota_upstream_errors_total",
		Help: "Total number of failed Steam Web API requests by endpoint",
	}, []string{"endpoint"})

	upstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dota_upstream_request_duration_seconds",
		Help:    "Duration of Steam Web API round trips",
		Buckets: prometheus.DefBuckets,
	})
)

// Doer abstracts *http.Client so tests can stub the transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the Steam Web API client.
type Config struct {
	// APIKey is the Steam Web API key credential.
	APIKey string
	// BaseURL overrides the Steam API base, mainly for tests.
	BaseURL string
	// HTTPClient overrides the transport; defaults to a 10s-timeout client.
	HTTPClient Doer
	Logger     *zap.Logger
}

// Client issues request/response round trips against the Steam Web API.
type Client struct {
	base   string
	key    string
	http   Doer
	logger *zap.SugaredLogger
}

// NewClient creates a Steam Web API client.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 10 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:   base,
		key:    cfg.APIKey,
		http:   doer,
		logger: logger.Sugar(),
	}
}

// RecentMatches returns up to limit most recent matches for the account,
// most recent first, as (match_id, start_time) string pairs.
func (c *Client) RecentMatches(ctx context.Context, accountID string, limit int) ([]MatchRef, error) {
	params := url.Values{}
	params.Set("account_id", accountID)
	params.Set("matches_requested", strconv.Itoa(limit))

	var result historyResult
	if err := c.get(ctx, matchHistoryPath, params, &result); err != nil {
		return nil, err
	}
	if result.Matches == nil {
		return nil, &UpstreamError{Endpoint: matchHistoryPath, Err: fmt.Errorf("response missing result.matches")}
	}

	refs := make([]MatchRef, 0, len(*result.Matches))
	for _, m := range *result.Matches {
		if m.MatchID == nil || m.StartTime == nil {
			return nil, &UpstreamError{Endpoint: matchHistoryPath, Err: fmt.Errorf("match entry missing match_id or start_time")}
		}
		refs = append(refs, MatchRef{
			MatchID:   strconv.FormatInt(*m.MatchID, 10),
			StartTime: strconv.FormatInt(*m.StartTime, 10),
		})
	}
	return refs, nil
}

// MatchDetail fetches the raw result object for one match. An unknown match
// id comes back as a NotFoundError; Steam reports it inside a 200 body.
func (c *Client) MatchDetail(ctx context.Context, matchID string) (*MatchDetail, error) {
	params := url.Values{}
	params.Set("match_id", matchID)

	var detail MatchDetail
	if err := c.get(ctx, matchDetailsPath, params, &detail); err != nil {
		return nil, err
	}
	if detail.Error != nil {
		return nil, &NotFoundError{MatchID: matchID, Message: *detail.Error}
	}
	return &detail, nil
}

// Heroes fetches the full hero catalogue as an id to localized name map.
func (c *Client) Heroes(ctx context.Context) (map[int]string, error) {
	params := url.Values{}
	params.Set("language", "en_us")

	var result heroesResult
	if err := c.get(ctx, allHeroesPath, params, &result); err != nil {
		return nil, err
	}
	if result.Heroes == nil {
		return nil, &UpstreamError{Endpoint: allHeroesPath, Err: fmt.Errorf("response missing result.heroes")}
	}

	heroes := make(map[int]string, len(*result.Heroes))
	for _, h := range *result.Heroes {
		if h.ID == nil || h.LocalizedName == nil {
			return nil, &UpstreamError{Endpoint: allHeroesPath, Err: fmt.Errorf("hero entry missing id or localized_name")}
		}
		heroes[*h.ID] = *h.LocalizedName
	}
	return heroes, nil
}

// get performs one GET round trip and decodes the result object into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		return &UpstreamError{Endpoint: path, Err: err}
	}

	upstreamRequests.WithLabelValues(path).Inc()
	start := time.Now()
	resp, err := c.http.Do(req)
	upstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamErrors.WithLabelValues(path).Inc()
		return &UpstreamError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErrors.WithLabelValues(path).Inc()
		c.logger.Warnw("Upstream returned non-success status", "endpoint", path, "status", resp.StatusCode)
		return &UpstreamError{Endpoint: path, Status: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		upstreamErrors.WithLabelValues(path).Inc()
		return &UpstreamError{Endpoint: path, Err: fmt.Errorf("decoding envelope: %w", err)}
	}
	if env.Result == nil {
		upstreamErrors.WithLabelValues(path).Inc()
		return &UpstreamError{Endpoint: path, Err: fmt.Errorf("response missing result object")}
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		upstreamErrors.WithLabelValues(path).Inc()
		return &UpstreamError{Endpoint: path, Err: fmt.Errorf("decoding result: %w", err)}
	}
	return nil
}
