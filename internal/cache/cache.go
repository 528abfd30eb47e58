// Package cache provides the performance cache backends: an in-process map
// and a redis-backed store. Both expose a single atomic get-or-compute
// operation so concurrent requests for the same new key never duplicate the
// upstream fetch.
package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dota_cache_hits_total",
		Help: "Total number of performance cache hits by backend",
	}, []string{"backend"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dota_cache_misses_total",
		Help: "Total number of performance cache misses by backend",
	}, []string{"backend"})
)

func cacheKey(accountID, matchID string) string {
	return accountID + ":" + matchID
}
