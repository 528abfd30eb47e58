package logic

import (
	"context"

	"github.com/dotacourier/match-api/internal/models"
	"github.com/dotacourier/match-api/internal/steam"
)

// UpstreamClient defines the slice of the Steam client the service depends on.
type UpstreamClient interface {
	RecentMatches(ctx context.Context, accountID string, limit int) ([]steam.MatchRef, error)
	MatchDetail(ctx context.Context, matchID string) (*steam.MatchDetail, error)
}

// PerformanceCache stores extracted performance records keyed by
// (account_id, match_id). GetOrCompute must be atomic: concurrent calls for
// the same missing key run compute exactly once. The returned bool reports
// whether the record came from the cache.
type PerformanceCache interface {
	GetOrCompute(ctx context.Context, accountID, matchID string, compute func(context.Context) (*models.PlayerPerformance, error)) (*models.PlayerPerformance, bool, error)
}

// MatchService is the primary read surface of the proxy.
type MatchService interface {
	// LatestPerformance resolves the account's most recent match and returns
	// the extracted performance record for it.
	LatestPerformance(ctx context.Context, accountID string) (*models.PlayerPerformance, error)
	// LatestSummary renders the latest performance as a human-readable
	// multi-line summary using the hero catalogue.
	LatestSummary(ctx context.Context, accountID string) (string, error)
	// Subscribe appends targetID to the subscriber's watch list and returns
	// a copy of the full updated subscription map.
	Subscribe(subscriberID, targetID string) map[string][]string
	// Subscriptions returns a copy of the current subscription map.
	Subscriptions() map[string][]string
}
