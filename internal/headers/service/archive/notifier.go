// Package archive writes best chain changes to the chain event archive in batches.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultFlushSize     = 100
	defaultFlushInterval = time.Second
	defaultFlushRPS      = 10
)

// Config tunes the batching. Zero fields take defaults.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// Notifier queues oracle events and flushes them to the repository in the background.
// Notify never waits: an event that finds the queue full is dropped and counted. A failed
// flush is logged and dropped.
type Notifier struct {
	repo    Repository
	metrics Metrics
	batcher *batcher.Batcher[model.Reorg]
	logger  *zap.Logger
}

// NewNotifier builds a Notifier. Call Start before the oracle publishes and Stop on shutdown.
func NewNotifier(repo Repository, metrics Metrics, cfg Config, logger *zap.Logger) (*Notifier, error) {
	if repo == nil {
		return nil, errors.New("archive repository is required")
	}
	if metrics == nil {
		return nil, errors.New("archive metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.FlushRPS <= 0 {
		cfg.FlushRPS = defaultFlushRPS
	}

	n := &Notifier{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("archive"),
	}
	n.batcher = batcher.New(n.logger, n.flush, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS)
	return n, nil
}

// Start begins flushing in the background.
func (n *Notifier) Start(ctx context.Context) {
	n.batcher.Start(ctx)
}

// Stop flushes what is queued and stops the background loop.
func (n *Notifier) Stop() {
	n.batcher.Stop()
}

// Notify queues event for archiving. It is called under the oracle's writer lock and does not block.
func (n *Notifier) Notify(_ context.Context, event model.Reorg) {
	if err := n.batcher.TryAdd(event); err != nil {
		n.metrics.ObserveDropped()
		n.logger.Warn("chain event not archived",
			zap.Stringer("tip", event.Tip()),
			zap.Int("removed", len(event.Removed)),
			zap.Error(err),
		)
		return
	}
	n.metrics.ObserveQueued()
}

func (n *Notifier) flush(ctx context.Context, events []model.Reorg) error {
	if err := n.repo.InsertChainEvents(ctx, events); err != nil {
		return fmt.Errorf("insert chain events: %w", err)
	}
	if err := n.repo.InsertChainEventPositions(ctx, events); err != nil {
		return fmt.Errorf("insert chain event positions: %w", err)
	}
	return nil
}
