// Package oracle maintains the best header chain of one chain type and computes reorganizations.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/chain"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"go.uber.org/zap"
)

// HeaderOracle is a single-writer, multi-reader state machine over a Database.
//
// Mutating calls are serialized by writeMu and hold it from validation until the update is
// persisted. The snapshot served to readers is replaced only after ApplyUpdate succeeds.
type HeaderOracle struct {
	db      Database
	chain   model.ChainType
	genesis model.Header
	logger  *zap.Logger
	metrics Metrics
	now     func() time.Time

	notifiers       []Notifier
	checkpointReorg bool

	writeMu sync.Mutex
	// commits is odd while an update is being persisted and the snapshot not yet replaced.
	commits atomic.Uint64

	mu   sync.RWMutex
	snap snapshot
}

type snapshot struct {
	best          model.Position
	checkpoint    model.Checkpoint
	hasCheckpoint bool
}

// Option configures a HeaderOracle.
type Option func(*HeaderOracle)

// WithMetrics reports oracle activity to m.
func WithMetrics(m Metrics) Option {
	return func(o *HeaderOracle) {
		o.metrics = m
	}
}

// WithNotifier registers n for best-chain changes. It may be given more than once.
func WithNotifier(n Notifier) Option {
	return func(o *HeaderOracle) {
		if n != nil {
			o.notifiers = append(o.notifiers, n)
		}
	}
}

// WithCheckpointReorg lets AddCheckpoint install a checkpoint that contradicts the current best
// chain and reorganize onto the best eligible chain instead of failing.
func WithCheckpointReorg(enabled bool) Option {
	return func(o *HeaderOracle) {
		o.checkpointReorg = enabled
	}
}

// WithClock sets the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *HeaderOracle) {
		if now != nil {
			o.now = now
		}
	}
}

// WithGenesis overrides the genesis header of the chain type.
func WithGenesis(genesis model.Header) Option {
	return func(o *HeaderOracle) {
		o.genesis = genesis
	}
}

// New opens an oracle over db. An empty database is seeded with the genesis header.
func New(ctx context.Context, db Database, chainType model.ChainType, logger *zap.Logger, opts ...Option) (*HeaderOracle, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}
	if chainType.IsZero() {
		return nil, errors.New("chain type is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	o := &HeaderOracle{
		db:    db,
		chain: chainType,
		logger: logger.With(
			zap.String("coin", string(chainType.Coin)),
			zap.String("network", string(chainType.Network)),
		),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.genesis.Hash == (chainhash.Hash{}) {
		genesis, err := chain.Genesis(chainType)
		if err != nil {
			return nil, fmt.Errorf("genesis: %w", err)
		}
		o.genesis = genesis
	}
	if o.genesis.Chain != chainType {
		return nil, fmt.Errorf("%w: genesis belongs to %s", ErrWrongChain, o.genesis.Chain)
	}

	if err := o.load(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *HeaderOracle) load(ctx context.Context) error {
	tip, ok, err := o.db.BestChainTip(ctx)
	if err != nil {
		return fmt.Errorf("load best chain tip: %w", err)
	}

	if !ok {
		genesis := o.genesis.WithHeight(0)
		if err = o.db.ApplyUpdate(ctx, &Update{
			Headers: []model.ChainState{{
				Header:         genesis,
				CumulativeWork: genesis.Work,
				Connected:      true,
			}},
			BestChain: &BestChainChange{
				Ancestor: model.Position{Height: model.UnknownHeight},
				Added:    []model.Position{genesis.Position()},
			},
		}); err != nil {
			return fmt.Errorf("store genesis: %w", err)
		}
		o.logger.Info("seeded genesis header", zap.Stringer("hash", genesis.Hash))
		tip = genesis.Position()
	} else {
		hash, found, err := o.db.BestHashAt(ctx, 0)
		if err != nil {
			return fmt.Errorf("load genesis hash: %w", err)
		}
		if !found || hash != o.genesis.Hash {
			return fmt.Errorf("%w: database genesis %s does not match %s", ErrWrongChain, hash, o.genesis.Hash)
		}
	}

	cp, hasCheckpoint, err := o.db.Checkpoint(ctx)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}

	o.setSnapshot(snapshot{best: tip, checkpoint: cp, hasCheckpoint: hasCheckpoint})
	o.logger.Info("header oracle loaded", zap.Stringer("best", tip), zap.Bool("checkpoint", hasCheckpoint))
	if o.metrics != nil {
		o.metrics.ObserveBestHeight(tip.Height)
	}
	return nil
}

// Chain returns the chain type served by the oracle.
func (o *HeaderOracle) Chain() model.ChainType {
	return o.chain
}

// BestChain returns the tip of the best chain.
func (o *HeaderOracle) BestChain() model.Position {
	return o.snapshot().best
}

// GetCheckpoint returns the installed checkpoint, if any.
func (o *HeaderOracle) GetCheckpoint() (model.Checkpoint, bool) {
	s := o.snapshot()
	return s.checkpoint, s.hasCheckpoint
}

// LoadHeader returns the stored header for hash or nil when it is unknown.
// Headers waiting for their parent carry model.UnknownHeight.
func (o *HeaderOracle) LoadHeader(ctx context.Context, hash chainhash.Hash) (*model.Header, error) {
	state, err := o.db.LoadHeader(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("load header %s: %w", hash, err)
	}
	if state == nil {
		return nil, nil
	}
	header := state.Header
	return &header, nil
}

// BestHashAt returns the best-chain hash at height.
func (o *HeaderOracle) BestHashAt(ctx context.Context, height int64) (chainhash.Hash, bool, error) {
	if height < 0 || height > o.BestChain().Height {
		return chainhash.Hash{}, false, nil
	}
	hash, ok, err := o.db.BestHashAt(ctx, height)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("best hash at %d: %w", height, err)
	}
	return hash, ok, nil
}

// IsInBestChain reports whether pos lies on the best chain.
func (o *HeaderOracle) IsInBestChain(ctx context.Context, pos model.Position) (bool, error) {
	hash, ok, err := o.BestHashAt(ctx, pos.Height)
	if err != nil || !ok {
		return false, err
	}
	return hash == pos.Hash, nil
}

// Siblings returns the connected fork tips that are not the best tip.
func (o *HeaderOracle) Siblings(ctx context.Context) ([]chainhash.Hash, error) {
	siblings, err := o.db.Siblings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load siblings: %w", err)
	}
	return siblings, nil
}

func (o *HeaderOracle) snapshot() snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snap
}

func (o *HeaderOracle) setSnapshot(s snapshot) {
	o.mu.Lock()
	o.snap = s
	o.mu.Unlock()
}

// edit runs fn against a fresh update and persists what it staged. The caller holds writeMu.
// When fn fails the staged changes are dropped; the snapshot moves only after ApplyUpdate succeeds.
func (o *HeaderOracle) edit(ctx context.Context, fn func(u *update) error) error {
	u := newUpdate(ctx, o.db, o.snapshot())
	if err := fn(u); err != nil {
		return err
	}

	upd := u.build()
	if upd.IsEmpty() {
		return nil
	}
	o.commits.Add(1)
	if err := o.db.ApplyUpdate(ctx, upd); err != nil {
		o.commits.Add(1)
		return fmt.Errorf("apply update: %w", err)
	}

	o.setSnapshot(snapshot{
		best:          u.newBest(),
		checkpoint:    u.checkpoint,
		hasCheckpoint: u.hasCheckpoint,
	})
	o.commits.Add(1)

	if u.reorg != nil {
		o.publish(ctx, *u.reorg)
	}
	return nil
}

func (o *HeaderOracle) publish(ctx context.Context, event model.Reorg) {
	event.Chain = o.chain
	event.OccurredAt = o.now()

	if event.IsReorg() {
		o.logger.Info("best chain reorganized",
			zap.Stringer("ancestor", event.Ancestor),
			zap.Stringer("old_tip", event.OldTip()),
			zap.Stringer("new_tip", event.Tip()),
			zap.Int("removed", len(event.Removed)),
			zap.Int("added", len(event.Added)),
		)
	} else {
		o.logger.Debug("best chain extended", zap.Stringer("tip", event.Tip()), zap.Int("added", len(event.Added)))
	}

	if o.metrics != nil {
		o.metrics.ObserveReorg(event.Depth(), len(event.Added))
		o.metrics.ObserveBestHeight(event.Tip().Height)
	}
	for _, n := range o.notifiers {
		n.Notify(ctx, event)
	}
}
