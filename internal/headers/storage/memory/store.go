// Package memory is a map-backed header database for tests and short-lived oracles.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/oracle"
)

// Store keeps every index in memory. Updates are checked against the current state before
// anything is changed, so a rejected update leaves the store untouched.
type Store struct {
	mu           sync.RWMutex
	headers      map[chainhash.Hash]model.ChainState
	best         []chainhash.Hash
	siblings     map[chainhash.Hash]struct{}
	disconnected map[chainhash.Hash]map[chainhash.Hash]struct{}
	checkpoint   *model.Checkpoint
}

var _ oracle.Database = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		headers:      make(map[chainhash.Hash]model.ChainState),
		siblings:     make(map[chainhash.Hash]struct{}),
		disconnected: make(map[chainhash.Hash]map[chainhash.Hash]struct{}),
	}
}

func (s *Store) HeaderExists(ctx context.Context, hash chainhash.Hash) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.headers[hash]
	return ok, nil
}

func (s *Store) LoadHeader(ctx context.Context, hash chainhash.Hash) (*model.ChainState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.headers[hash]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (s *Store) BestChainTip(ctx context.Context) (model.Position, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.best) == 0 {
		return model.Position{}, false, nil
	}
	height := len(s.best) - 1
	return model.NewPosition(int64(height), s.best[height]), true, nil
}

func (s *Store) BestHashAt(ctx context.Context, height int64) (chainhash.Hash, bool, error) {
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if height < 0 || height >= int64(len(s.best)) {
		return chainhash.Hash{}, false, nil
	}
	return s.best[height], true, nil
}

func (s *Store) Siblings(ctx context.Context) ([]chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.siblings), nil
}

func (s *Store) DisconnectedChildren(ctx context.Context, parent chainhash.Hash) ([]chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.disconnected[parent]), nil
}

func (s *Store) Checkpoint(ctx context.Context) (model.Checkpoint, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Checkpoint{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.checkpoint == nil {
		return model.Checkpoint{}, false, nil
	}
	return *s.checkpoint, true, nil
}

// SetCheckpoint stores cp without any best-chain checks.
func (s *Store) SetCheckpoint(ctx context.Context, cp model.Checkpoint) error {
	return s.ApplyUpdate(ctx, &oracle.Update{Checkpoint: &oracle.CheckpointChange{Checkpoint: cp}})
}

// ClearCheckpoint removes the stored checkpoint.
func (s *Store) ClearCheckpoint(ctx context.Context) error {
	return s.ApplyUpdate(ctx, &oracle.Update{Checkpoint: &oracle.CheckpointChange{Clear: true}})
}

func (s *Store) ApplyUpdate(ctx context.Context, update *oracle.Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if update == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(update); err != nil {
		return err
	}

	for _, state := range update.Headers {
		s.headers[state.Header.Hash] = state
	}
	if change := update.BestChain; change != nil {
		s.best = s.best[:change.Ancestor.Height+1]
		for _, pos := range change.Added {
			s.best = append(s.best, pos.Hash)
		}
	}
	for _, hash := range update.RemoveSiblings {
		delete(s.siblings, hash)
	}
	for _, hash := range update.AddSiblings {
		s.siblings[hash] = struct{}{}
	}
	for _, edge := range update.RemoveDisconnected {
		children := s.disconnected[edge.Parent]
		delete(children, edge.Child)
		if len(children) == 0 {
			delete(s.disconnected, edge.Parent)
		}
	}
	for _, edge := range update.AddDisconnected {
		children, ok := s.disconnected[edge.Parent]
		if !ok {
			children = make(map[chainhash.Hash]struct{})
			s.disconnected[edge.Parent] = children
		}
		children[edge.Child] = struct{}{}
	}
	if change := update.Checkpoint; change != nil {
		if change.Clear {
			s.checkpoint = nil
		} else {
			cp := change.Checkpoint
			s.checkpoint = &cp
		}
	}
	return nil
}

// check rejects updates that would break the best-chain index.
func (s *Store) check(update *oracle.Update) error {
	change := update.BestChain
	if change == nil {
		return nil
	}
	return oracle.CheckBestChainChange(change, int64(len(s.best))-1, func(height int64) (chainhash.Hash, bool, error) {
		if height < 0 || height >= int64(len(s.best)) {
			return chainhash.Hash{}, false, nil
		}
		return s.best[height], true, nil
	})
}

func sortedKeys(set map[chainhash.Hash]struct{}) []chainhash.Hash {
	out := make([]chainhash.Hash, 0, len(set))
	for hash := range set {
		out = append(out, hash)
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i][:]) < string(out[j][:])
	})
	return out
}
