package oracle

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

// update stages every change made by one mutating call. Reads see staged rows first.
// Nothing reaches the database unless the caller finishes without error and build is applied.
type update struct {
	ctx context.Context
	db  Database

	// best is the tip before this update; bestIndex caches lookups into that chain.
	best      model.Position
	bestIndex map[int64]chainhash.Hash

	checkpoint    model.Checkpoint
	hasCheckpoint bool

	loaded map[chainhash.Hash]*model.ChainState
	staged map[chainhash.Hash]model.ChainState
	order  []chainhash.Hash

	addSiblings    map[chainhash.Hash]struct{}
	removeSiblings map[chainhash.Hash]struct{}
	addDisc        []DisconnectedEdge
	removeDisc     []DisconnectedEdge

	bestChange       *BestChainChange
	checkpointChange *CheckpointChange
	reorg            *model.Reorg
}

func newUpdate(ctx context.Context, db Database, snap snapshot) *update {
	return &update{
		ctx:            ctx,
		db:             db,
		best:           snap.best,
		bestIndex:      make(map[int64]chainhash.Hash),
		checkpoint:     snap.checkpoint,
		hasCheckpoint:  snap.hasCheckpoint,
		loaded:         make(map[chainhash.Hash]*model.ChainState),
		staged:         make(map[chainhash.Hash]model.ChainState),
		addSiblings:    make(map[chainhash.Hash]struct{}),
		removeSiblings: make(map[chainhash.Hash]struct{}),
	}
}

// load returns the staged or stored row for hash, nil when unknown.
func (u *update) load(hash chainhash.Hash) (*model.ChainState, error) {
	if state, ok := u.staged[hash]; ok {
		return &state, nil
	}
	if state, ok := u.loaded[hash]; ok {
		return state, nil
	}
	state, err := u.db.LoadHeader(u.ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("load header %s: %w", hash, err)
	}
	u.loaded[hash] = state
	return state, nil
}

// loadConnected is load for hashes that must be connected, such as ancestors of a connected header.
func (u *update) loadConnected(hash chainhash.Hash) (*model.ChainState, error) {
	state, err := u.load(hash)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHeader, hash)
	}
	if !state.Connected {
		return nil, fmt.Errorf("%w: %s", ErrNotConnected, hash)
	}
	return state, nil
}

func (u *update) stage(state model.ChainState) {
	if _, ok := u.staged[state.Header.Hash]; !ok {
		u.order = append(u.order, state.Header.Hash)
	}
	u.staged[state.Header.Hash] = state
}

// bestHashAt reads the best chain as it was before this update.
func (u *update) bestHashAt(height int64) (chainhash.Hash, bool, error) {
	if height < 0 || height > u.best.Height {
		return chainhash.Hash{}, false, nil
	}
	if height == u.best.Height {
		return u.best.Hash, true, nil
	}
	if hash, ok := u.bestIndex[height]; ok {
		return hash, true, nil
	}
	hash, ok, err := u.db.BestHashAt(u.ctx, height)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("best hash at %d: %w", height, err)
	}
	if ok {
		u.bestIndex[height] = hash
	}
	return hash, ok, nil
}

func (u *update) onOldBestChain(state *model.ChainState) (bool, error) {
	hash, ok, err := u.bestHashAt(state.Header.Height)
	if err != nil || !ok {
		return false, err
	}
	return hash == state.Header.Hash, nil
}

// ancestorAt walks parent links from a connected header down to height.
func (u *update) ancestorAt(state *model.ChainState, height int64) (*model.ChainState, error) {
	if height > state.Header.Height || height < 0 {
		return nil, fmt.Errorf("no ancestor of %s at height %d", state.Position(), height)
	}
	node := state
	for node.Header.Height > height {
		onBest, err := u.onOldBestChain(node)
		if err != nil {
			return nil, err
		}
		if onBest {
			hash, _, err := u.bestHashAt(height)
			if err != nil {
				return nil, err
			}
			return u.loadConnected(hash)
		}
		if node, err = u.loadConnected(node.Header.ParentHash); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// eligible reports whether the chain ending at state honours the effective checkpoint.
func (u *update) eligible(state *model.ChainState) (bool, error) {
	if !u.hasCheckpoint || state.Header.Height < u.checkpoint.Height {
		return true, nil
	}
	ancestor, err := u.ancestorAt(state, u.checkpoint.Height)
	if err != nil {
		return false, err
	}
	return ancestor.Header.Hash == u.checkpoint.Hash, nil
}

func (u *update) siblingAdd(hash chainhash.Hash) {
	delete(u.removeSiblings, hash)
	u.addSiblings[hash] = struct{}{}
}

func (u *update) siblingRemove(hash chainhash.Hash) {
	delete(u.addSiblings, hash)
	u.removeSiblings[hash] = struct{}{}
}

// siblings returns the stored sibling set with staged changes applied.
func (u *update) siblings() ([]chainhash.Hash, error) {
	stored, err := u.db.Siblings(u.ctx)
	if err != nil {
		return nil, fmt.Errorf("load siblings: %w", err)
	}
	seen := make(map[chainhash.Hash]struct{}, len(stored)+len(u.addSiblings))
	out := make([]chainhash.Hash, 0, len(stored)+len(u.addSiblings))
	for _, hash := range stored {
		if _, removed := u.removeSiblings[hash]; removed {
			continue
		}
		seen[hash] = struct{}{}
		out = append(out, hash)
	}
	for hash := range u.addSiblings {
		if _, ok := seen[hash]; ok {
			continue
		}
		out = append(out, hash)
	}
	return out, nil
}

func (u *update) setCheckpoint(cp model.Checkpoint) {
	u.checkpoint = cp
	u.hasCheckpoint = true
	u.checkpointChange = &CheckpointChange{Checkpoint: cp}
}

func (u *update) clearCheckpoint() {
	u.checkpoint = model.Checkpoint{}
	u.hasCheckpoint = false
	u.checkpointChange = &CheckpointChange{Clear: true}
}

// newBest is the tip after this update.
func (u *update) newBest() model.Position {
	if u.reorg != nil {
		return u.reorg.Tip()
	}
	return u.best
}

func (u *update) build() *Update {
	out := &Update{
		BestChain:          u.bestChange,
		AddDisconnected:    u.addDisc,
		RemoveDisconnected: u.removeDisc,
		Checkpoint:         u.checkpointChange,
	}
	for _, hash := range u.order {
		out.Headers = append(out.Headers, u.staged[hash])
	}
	for hash := range u.addSiblings {
		out.AddSiblings = append(out.AddSiblings, hash)
	}
	for hash := range u.removeSiblings {
		out.RemoveSiblings = append(out.RemoveSiblings, hash)
	}
	return out
}
