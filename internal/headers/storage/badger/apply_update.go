package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dgraph-io/badger/v4"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/oracle"
)

// ApplyUpdate writes update in a single transaction and refreshes the row cache after commit.
func (s *Store) ApplyUpdate(ctx context.Context, update *oracle.Update) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("apply_update", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	if update == nil || update.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.db.Update(func(txn *badger.Txn) error {
		return applyUpdate(txn, update)
	}); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	for _, state := range update.Headers {
		s.cache.Add(state.Header.Hash, state)
	}
	return nil
}

// SetCheckpoint stores cp without any best-chain checks.
func (s *Store) SetCheckpoint(ctx context.Context, cp model.Checkpoint) error {
	return s.ApplyUpdate(ctx, &oracle.Update{Checkpoint: &oracle.CheckpointChange{Checkpoint: cp}})
}

// ClearCheckpoint removes the stored checkpoint.
func (s *Store) ClearCheckpoint(ctx context.Context) error {
	return s.ApplyUpdate(ctx, &oracle.Update{Checkpoint: &oracle.CheckpointChange{Clear: true}})
}

func applyUpdate(txn *badger.Txn, update *oracle.Update) error {
	if update.BestChain != nil {
		if err := applyBestChain(txn, update.BestChain); err != nil {
			return err
		}
	}

	for _, state := range update.Headers {
		raw, err := encodeState(state)
		if err != nil {
			return fmt.Errorf("encode header %s: %w", state.Header.Hash, err)
		}
		if err = txn.Set(headerKey(state.Header.Hash), raw); err != nil {
			return fmt.Errorf("set header %s: %w", state.Header.Hash, err)
		}
	}

	for _, hash := range update.RemoveSiblings {
		if err := txn.Delete(siblingKey(hash)); err != nil {
			return fmt.Errorf("delete sibling %s: %w", hash, err)
		}
	}
	for _, hash := range update.AddSiblings {
		if err := txn.Set(siblingKey(hash), nil); err != nil {
			return fmt.Errorf("set sibling %s: %w", hash, err)
		}
	}

	for _, edge := range update.RemoveDisconnected {
		if err := txn.Delete(disconnectedKey(edge.Parent, edge.Child)); err != nil {
			return fmt.Errorf("delete disconnected %s: %w", edge.Child, err)
		}
	}
	for _, edge := range update.AddDisconnected {
		if err := txn.Set(disconnectedKey(edge.Parent, edge.Child), nil); err != nil {
			return fmt.Errorf("set disconnected %s: %w", edge.Child, err)
		}
	}

	if change := update.Checkpoint; change != nil {
		if change.Clear {
			if err := txn.Delete(checkpointKey); err != nil {
				return fmt.Errorf("delete checkpoint: %w", err)
			}
		} else {
			raw, err := encodeCheckpoint(change.Checkpoint)
			if err != nil {
				return fmt.Errorf("encode checkpoint: %w", err)
			}
			if err = txn.Set(checkpointKey, raw); err != nil {
				return fmt.Errorf("set checkpoint: %w", err)
			}
		}
	}
	return nil
}

func applyBestChain(txn *badger.Txn, change *oracle.BestChainChange) error {
	tip, err := getTipHeight(txn)
	if err != nil {
		return fmt.Errorf("load tip height: %w", err)
	}
	if err = oracle.CheckBestChainChange(change, tip, func(height int64) (chainhash.Hash, bool, error) {
		return getBestHash(txn, height)
	}); err != nil {
		return err
	}

	for height := change.Ancestor.Height + 1; height <= tip; height++ {
		if err = txn.Delete(bestKey(height)); err != nil {
			return fmt.Errorf("delete best entry %d: %w", height, err)
		}
	}
	for _, pos := range change.Added {
		if err = txn.Set(bestKey(pos.Height), pos.Hash[:]); err != nil {
			return fmt.Errorf("set best entry %s: %w", pos, err)
		}
	}

	newTip := change.Ancestor.Height + int64(len(change.Added))
	if err = txn.Set(tipKey, encodeHeight(newTip)); err != nil {
		return fmt.Errorf("set tip height: %w", err)
	}
	return nil
}
