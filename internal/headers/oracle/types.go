package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Database persists header rows and the best-chain, sibling, disconnected and checkpoint
	// indexes. ApplyUpdate is the only mutation and must be all-or-nothing.
	Database interface {
		// HeaderExists is part of the storage contract for callers that need no row; the oracle
		// itself reads rows through LoadHeader.
		HeaderExists(ctx context.Context, hash chainhash.Hash) (bool, error)
		// LoadHeader returns nil, nil for an unknown hash.
		LoadHeader(ctx context.Context, hash chainhash.Hash) (*model.ChainState, error)
		// BestChainTip reports false when the best chain is empty.
		BestChainTip(ctx context.Context) (model.Position, bool, error)
		BestHashAt(ctx context.Context, height int64) (chainhash.Hash, bool, error)
		Siblings(ctx context.Context) ([]chainhash.Hash, error)
		DisconnectedChildren(ctx context.Context, parent chainhash.Hash) ([]chainhash.Hash, error)
		Checkpoint(ctx context.Context) (model.Checkpoint, bool, error)
		ApplyUpdate(ctx context.Context, update *Update) error
	}

	// Metrics records oracle activity.
	Metrics interface {
		ObserveAddHeaders(err error, headers int, started time.Time)
		ObserveCheckpoint(operation string, err error, started time.Time)
		ObserveReorg(depth, added int)
		ObserveBestHeight(height int64)
	}

	// Notifier receives every committed best-chain change. It is called with the oracle's
	// writer lock held: it must return promptly and must not call AddHeaders, AddCheckpoint or
	// DeleteCheckpoint. Read methods, CalculateReorg included, are safe.
	Notifier interface {
		Notify(ctx context.Context, event model.Reorg)
	}
)

// Update is one atomic set of index changes.
type Update struct {
	// Headers are inserted or replace the stored row with the same hash.
	Headers            []model.ChainState
	BestChain          *BestChainChange
	AddSiblings        []chainhash.Hash
	RemoveSiblings     []chainhash.Hash
	AddDisconnected    []DisconnectedEdge
	RemoveDisconnected []DisconnectedEdge
	Checkpoint         *CheckpointChange
}

// BestChainChange drops every best-chain entry above Ancestor.Height and appends Added.
// An Ancestor height of -1 replaces the whole index.
type BestChainChange struct {
	Ancestor model.Position
	Added    []model.Position
}

// DisconnectedEdge links a stored header to the missing parent it waits for.
type DisconnectedEdge struct {
	Parent chainhash.Hash
	Child  chainhash.Hash
}

// CheckpointChange installs Checkpoint, or removes the stored one when Clear is set.
type CheckpointChange struct {
	Checkpoint model.Checkpoint
	Clear      bool
}

// IsEmpty reports whether applying the update would change nothing.
func (u *Update) IsEmpty() bool {
	return len(u.Headers) == 0 &&
		u.BestChain == nil &&
		len(u.AddSiblings) == 0 &&
		len(u.RemoveSiblings) == 0 &&
		len(u.AddDisconnected) == 0 &&
		len(u.RemoveDisconnected) == 0 &&
		u.Checkpoint == nil
}

var errEmptyBestChain = errors.New("best chain change leaves the best chain empty")

// CheckBestChainChange verifies that change applies to a best chain whose tip is at tipHeight.
// Stores call it inside their write transaction before touching anything.
func CheckBestChainChange(change *BestChainChange, tipHeight int64, hashAt func(height int64) (chainhash.Hash, bool, error)) error {
	ancestor := change.Ancestor
	if ancestor.Height < model.UnknownHeight || ancestor.Height > tipHeight {
		return fmt.Errorf("best chain ancestor %s outside 0..%d", ancestor, tipHeight)
	}
	if ancestor.Height == model.UnknownHeight && len(change.Added) == 0 {
		return errEmptyBestChain
	}
	if ancestor.Height >= 0 {
		hash, ok, err := hashAt(ancestor.Height)
		if err != nil {
			return err
		}
		if !ok || hash != ancestor.Hash {
			return fmt.Errorf("best chain ancestor %s is not on the best chain", ancestor)
		}
	}
	for i, pos := range change.Added {
		if want := ancestor.Height + 1 + int64(i); pos.Height != want {
			return fmt.Errorf("best chain entry %s out of order, want height %d", pos, want)
		}
	}
	return nil
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, event model.Reorg)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, event model.Reorg) {
	f(ctx, event)
}
