package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dgraph-io/badger/v4"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

// HeaderExists reports whether a row is stored for hash.
func (s *Store) HeaderExists(ctx context.Context, hash chainhash.Hash) (bool, error) {
	state, err := s.LoadHeader(ctx, hash)
	if err != nil {
		return false, err
	}
	return state != nil, nil
}

// LoadHeader returns the row for hash, nil when unknown.
func (s *Store) LoadHeader(ctx context.Context, hash chainhash.Hash) (state *model.ChainState, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("load_header", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.cache.Get(hash); ok {
		return &cached, nil
	}

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		state, err = getState(txn, hash)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load header %s: %w", hash, err)
	}
	if state != nil {
		s.cache.Add(hash, *state)
	}
	return state, nil
}

// BestChainTip returns the highest best-chain entry.
func (s *Store) BestChainTip(ctx context.Context) (tip model.Position, ok bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("best_chain_tip", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return model.Position{}, false, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		height, err := getTipHeight(txn)
		if err != nil || height < 0 {
			return err
		}
		hash, found, err := getBestHash(txn, height)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("best chain tip %d has no entry", height)
		}
		tip, ok = model.NewPosition(height, hash), true
		return nil
	})
	if err != nil {
		return model.Position{}, false, fmt.Errorf("load best chain tip: %w", err)
	}
	return tip, ok, nil
}

// BestHashAt returns the best-chain hash at height.
func (s *Store) BestHashAt(ctx context.Context, height int64) (hash chainhash.Hash, ok bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("best_hash_at", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return chainhash.Hash{}, false, err
	}
	if height < 0 {
		return chainhash.Hash{}, false, nil
	}

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		hash, ok, err = getBestHash(txn, height)
		return err
	})
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("load best hash at %d: %w", height, err)
	}
	return hash, ok, nil
}

// Siblings lists the sibling set in key order.
func (s *Store) Siblings(ctx context.Context) (hashes []chainhash.Hash, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("siblings", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	hashes = []chainhash.Hash{}
	err = s.db.View(func(txn *badger.Txn) error {
		return scanHashes(txn, siblingPrefix, func(hash chainhash.Hash) {
			hashes = append(hashes, hash)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load siblings: %w", err)
	}
	return hashes, nil
}

// DisconnectedChildren lists the stored headers waiting for parent.
func (s *Store) DisconnectedChildren(ctx context.Context, parent chainhash.Hash) (children []chainhash.Hash, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("disconnected_children", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	children = []chainhash.Hash{}
	err = s.db.View(func(txn *badger.Txn) error {
		return scanHashes(txn, prefixed(disconnectedPrefix, parent[:]), func(hash chainhash.Hash) {
			children = append(children, hash)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load disconnected children of %s: %w", parent, err)
	}
	return children, nil
}

// Checkpoint returns the stored checkpoint.
func (s *Store) Checkpoint(ctx context.Context) (cp model.Checkpoint, ok bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("checkpoint", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return model.Checkpoint{}, false, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(checkpointKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			cp, err = decodeCheckpoint(val)
			ok = err == nil
			return err
		})
	})
	if err != nil {
		return model.Checkpoint{}, false, fmt.Errorf("load checkpoint: %w", err)
	}
	return cp, ok, nil
}

func getState(txn *badger.Txn, hash chainhash.Hash) (*model.ChainState, error) {
	item, err := txn.Get(headerKey(hash))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state model.ChainState
	if err = item.Value(func(val []byte) error {
		state, err = decodeState(val)
		return err
	}); err != nil {
		return nil, err
	}
	return &state, nil
}

// getTipHeight returns -1 for an empty best chain.
func getTipHeight(txn *badger.Txn) (int64, error) {
	item, err := txn.Get(tipKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.UnknownHeight, nil
	}
	if err != nil {
		return 0, err
	}
	var height int64
	err = item.Value(func(val []byte) error {
		height, err = decodeHeight(val)
		return err
	})
	return height, err
}

func getBestHash(txn *badger.Txn, height int64) (chainhash.Hash, bool, error) {
	item, err := txn.Get(bestKey(height))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chainhash.Hash{}, false, nil
	}
	if err != nil {
		return chainhash.Hash{}, false, err
	}
	var hash chainhash.Hash
	err = item.Value(func(val []byte) error {
		hash, err = hashFromBytes(val)
		return err
	})
	if err != nil {
		return chainhash.Hash{}, false, err
	}
	return hash, true, nil
}

// scanHashes calls fn with the trailing hash of every key under prefix.
func scanHashes(txn *badger.Txn, prefix []byte, fn func(chainhash.Hash)) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix

	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := it.Item().Key()
		hash, err := hashFromBytes(key[len(key)-chainhash.HashSize:])
		if err != nil {
			return err
		}
		fn(hash)
	}
	return nil
}
