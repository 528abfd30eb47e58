// Package logic holds the core of the proxy: the match-detail extractor, the
// presentation formatter and the service orchestrating upstream calls, the
// performance cache and the subscription list.
package logic

import (
	"context"

	"go.uber.org/zap"

	"github.com/dotacourier/match-api/internal/models"
)

// MatchServiceConfig wires the service's collaborators.
type MatchServiceConfig struct {
	Client UpstreamClient
	Cache  PerformanceCache
	// Heroes is the id to localized-name catalogue, fetched once at startup
	// and read-only afterwards.
	Heroes map[int]string
	Logger *zap.Logger
}

type matchService struct {
	client UpstreamClient
	cache  PerformanceCache
	heroes map[int]string
	subs   *SubscriptionList
	logger *zap.SugaredLogger
}

// NewMatchService creates the service layer over the given collaborators.
func NewMatchService(cfg MatchServiceConfig) MatchService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &matchService{
		client: cfg.Client,
		cache:  cfg.Cache,
		heroes: cfg.Heroes,
		subs:   NewSubscriptionList(),
		logger: logger.Sugar(),
	}
}

// LatestPerformance runs the four-step pipeline: resolve the most recent
// match id, then fetch-and-extract through the cache keyed on
// (account_id, match_id).
func (s *matchService) LatestPerformance(ctx context.Context, accountID string) (*models.PlayerPerformance, error) {
	refs, err := s.client.RecentMatches(ctx, accountID, 1)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, &models.NoMatchHistoryError{AccountID: accountID}
	}
	matchID := refs[0].MatchID

	perf, hit, err := s.cache.GetOrCompute(ctx, accountID, matchID, func(ctx context.Context) (*models.PlayerPerformance, error) {
		detail, err := s.client.MatchDetail(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return ExtractPerformance(detail, accountID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Resolved latest performance",
		"account_id", accountID, "match_id", matchID, "cache_hit", hit)
	return perf, nil
}

func (s *matchService) LatestSummary(ctx context.Context, accountID string) (string, error) {
	perf, err := s.LatestPerformance(ctx, accountID)
	if err != nil {
		return "", err
	}
	return FormatPerformance(perf, s.heroes)
}

func (s *matchService) Subscribe(subscriberID, targetID string) map[string][]string {
	subs := s.subs.Add(subscriberID, targetID)
	s.logger.Infow("Added subscription", "my_id", subscriberID, "target_id", targetID)
	return subs
}

func (s *matchService) Subscriptions() map[string][]string {
	return s.subs.Snapshot()
}
