// Package follower keeps a header oracle in step with one node.
package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/clock"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"go.uber.org/zap"
)

// Config tunes a Service. Zero fields take defaults.
type Config struct {
	BatchSize    int64
	MinLookback  int64
	MaxLookback  int64
	PollInterval time.Duration
}

// Service feeds the node's best chain into the oracle.
//
// Every round refetches lookback heights below the oracle tip so that a node reorg is seen as a
// competing branch. When the fetched top still does not connect, the branch forked deeper and
// the lookback doubles up to MaxLookback.
type Service struct {
	source  HeaderSource
	oracle  HeaderOracle
	metrics Metrics
	logger  *zap.Logger
	signal  <-chan struct{}
	wait    func(context.Context, time.Duration, <-chan struct{}) (bool, error)

	batchSize    int64
	minLookback  int64
	maxLookback  int64
	pollInterval time.Duration
	lookback     int64
}

// NewService builds a Service. signal may be nil; a value on it starts the next round early.
func NewService(
	source HeaderSource,
	oracle HeaderOracle,
	metrics Metrics,
	cfg Config,
	chainType model.ChainType,
	logger *zap.Logger,
	signal <-chan struct{},
) (*Service, error) {
	if source == nil {
		return nil, errors.New("header source is required")
	}
	if oracle == nil {
		return nil, errors.New("header oracle is required")
	}
	if metrics == nil {
		return nil, errors.New("follower metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.MinLookback <= 0 {
		cfg.MinLookback = defaultMinLookback
	}
	if cfg.MaxLookback < cfg.MinLookback {
		cfg.MaxLookback = max(defaultMaxLookback, cfg.MinLookback)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	return &Service{
		source:  source,
		oracle:  oracle,
		metrics: metrics,
		logger: logger.With(
			zap.String("coin", string(chainType.Coin)),
			zap.String("network", string(chainType.Network)),
		).Named("follower"),
		signal:       signal,
		wait:         clock.Wait,
		batchSize:    cfg.BatchSize,
		minLookback:  cfg.MinLookback,
		maxLookback:  cfg.MaxLookback,
		pollInterval: cfg.PollInterval,
		lookback:     cfg.MinLookback,
	}, nil
}

// Run syncs until ctx is canceled. Rounds that leave the oracle behind the node repeat at once.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		caughtUp, err := s.Sync(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("sync round failed, backing off", zap.Error(err), zap.Duration("sleep", errorSleepDuration))
			if _, err = s.wait(ctx, errorSleepDuration, nil); err != nil {
				return err
			}
		case caughtUp:
			if _, err = s.wait(ctx, s.pollInterval, s.signal); err != nil {
				return err
			}
		}
	}
}

// Sync runs one round and reports whether the oracle has caught up with the node.
func (s *Service) Sync(ctx context.Context) (caughtUp bool, err error) {
	started := time.Now()
	fetched := 0
	defer func() {
		s.metrics.ObserveSync(err, fetched, started)
	}()

	tip := s.oracle.BestChain()
	nodeHeight, err := s.source.LatestHeight(ctx)
	if err != nil {
		return false, fmt.Errorf("latest node height: %w", err)
	}

	to := min(nodeHeight, tip.Height+s.batchSize)
	from := max(0, min(tip.Height, to)-s.lookback)

	headers, err := s.source.FetchHeaders(ctx, from, to)
	if err != nil {
		return false, fmt.Errorf("fetch headers %d..%d: %w", from, to, err)
	}
	fetched = len(headers)
	if len(headers) == 0 {
		return true, nil
	}

	if err = s.oracle.AddHeaders(ctx, headers); err != nil {
		return false, fmt.Errorf("add headers %d..%d: %w", from, to, err)
	}

	top := headers[len(headers)-1]
	stored, err := s.oracle.LoadHeader(ctx, top.Hash)
	if err != nil {
		return false, fmt.Errorf("load header %s: %w", top.Hash, err)
	}
	connected := stored != nil && stored.Height != model.UnknownHeight
	s.adjustLookback(connected, from)

	s.logger.Debug("sync round done",
		zap.Int64("from", from),
		zap.Int64("to", to),
		zap.Int64("node_height", nodeHeight),
		zap.Stringer("best", s.oracle.BestChain()),
		zap.Bool("connected", connected),
	)
	return connected && to >= nodeHeight, nil
}

func (s *Service) adjustLookback(connected bool, from int64) {
	next := s.minLookback
	if !connected {
		if from == 0 {
			s.logger.Error("node chain does not connect to the oracle genesis")
		}
		next = min(s.lookback*2, s.maxLookback)
		if next == s.lookback {
			s.logger.Warn("node branch forks below the maximum lookback", zap.Int64("lookback", next))
		} else {
			s.logger.Info("node branch does not connect, widening lookback", zap.Int64("lookback", next))
		}
	}
	s.lookback = next
	s.metrics.ObserveLookback(next)
}
