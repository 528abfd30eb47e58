// Package watcher polls the accounts on the subscription list in the
// background, warming the performance cache and recording newly completed
// matches per target. Delivery to subscribers stays outside this process.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dotacourier/match-api/internal/models"
)

// Prometheus metrics
var (
	watchCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dota_watcher_cycles_total",
		Help: "Total number of completed watcher poll cycles",
	})

	watchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dota_watcher_errors_total",
		Help: "Total number of failed target polls",
	})

	watchNewMatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dota_watcher_new_matches_total",
		Help: "Total number of newly observed matches across watched targets",
	})
)

// MatchSource is the slice of the service layer the watcher polls through.
type MatchSource interface {
	Subscriptions() map[string][]string
	LatestPerformance(ctx context.Context, accountID string) (*models.PlayerPerformance, error)
}

// Config configures the subscription watcher.
type Config struct {
	Source   MatchSource
	Interval time.Duration
	// Concurrency bounds the number of targets polled at once per cycle.
	Concurrency int
	Logger      *zap.Logger
}

// Watcher periodically polls every watched target's latest match.
type Watcher struct {
	source      MatchSource
	interval    time.Duration
	concurrency int
	logger      *zap.SugaredLogger

	mu       sync.Mutex
	lastSeen map[string]string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a watcher. It does nothing until Start is called.
func New(cfg Config) *Watcher {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		source:      cfg.Source,
		interval:    cfg.Interval,
		concurrency: concurrency,
		logger:      logger.Sugar(),
		lastSeen:    make(map[string]string),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the poll loop. An interval of 0 disables the watcher.
func (w *Watcher) Start() {
	if w.interval <= 0 {
		w.logger.Info("Subscription watcher disabled")
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.RunCycle(w.ctx)
			}
		}
	}()
	w.logger.Infow("Subscription watcher started", "interval", w.interval)
}

// Stop cancels the loop and waits for the in-flight cycle to finish.
func (w *Watcher) Stop() {
	w.cancel()
	w.wg.Wait()
}

// RunCycle polls every distinct watched target once.
func (w *Watcher) RunCycle(ctx context.Context) {
	targets := w.distinctTargets()
	if len(targets) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			w.pollTarget(ctx, target)
			return nil
		})
	}
	g.Wait()
	watchCycles.Inc()
}

func (w *Watcher) pollTarget(ctx context.Context, target string) {
	perf, err := w.source.LatestPerformance(ctx, target)
	if err != nil {
		watchErrors.Inc()
		w.logger.Warnw("Failed to poll watched target", "target_id", target, "error", err)
		return
	}

	w.mu.Lock()
	previous := w.lastSeen[target]
	w.lastSeen[target] = perf.MatchID
	w.mu.Unlock()

	if previous != "" && previous != perf.MatchID {
		watchNewMatches.Inc()
		w.logger.Infow("Watched target finished a new match",
			"target_id", target, "match_id", perf.MatchID, "win", perf.Win)
	}
}

// distinctTargets flattens the subscription map into a deduplicated target
// list so one popular target is polled once per cycle.
func (w *Watcher) distinctTargets() []string {
	seen := make(map[string]struct{})
	var targets []string
	for _, list := range w.source.Subscriptions() {
		for _, target := range list {
			if _, ok := seen[target]; ok {
				continue
			}
			seen[target] = struct{}{}
			targets = append(targets, target)
		}
	}
	return targets
}
