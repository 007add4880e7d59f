package oracle

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

// candidate is a possible best tip. current marks a header on the best chain as it was before
// this update.
type candidate struct {
	state   *model.ChainState
	current bool
}

// better reports whether c should replace w as the best tip.
// Strictly greater cumulative work wins and the current best chain keeps ties. Other ties go to
// the lower height, then to the lower hash bytes.
func better(c, w candidate) bool {
	if cmp := c.state.CumulativeWork.Cmp(w.state.CumulativeWork); cmp != 0 {
		return cmp > 0
	}
	if w.current {
		return false
	}
	if c.current {
		return true
	}
	if c.state.Header.Height != w.state.Header.Height {
		return c.state.Header.Height < w.state.Header.Height
	}
	return bytes.Compare(c.state.Header.Hash[:], w.state.Header.Hash[:]) < 0
}

// reevaluate picks the best eligible tip among the current tip and every sibling and
// reorganizes onto it when it differs from the current tip.
func (u *update) reevaluate() error {
	anchor, err := u.checkpointState()
	if err != nil {
		return err
	}

	current, err := u.loadConnected(u.best.Hash)
	if err != nil {
		return err
	}
	winner, err := u.effective(current, anchor)
	if err != nil {
		return err
	}

	siblings, err := u.siblings()
	if err != nil {
		return err
	}
	sort.Slice(siblings, func(i, j int) bool {
		return bytes.Compare(siblings[i][:], siblings[j][:]) < 0
	})

	for _, hash := range siblings {
		state, err := u.loadConnected(hash)
		if err != nil {
			return err
		}
		c, err := u.effective(state, anchor)
		if err != nil {
			return err
		}
		if better(c, winner) {
			winner = c
		}
	}

	if winner.state.Header.Hash == u.best.Hash {
		return nil
	}
	return u.switchTo(winner.state, siblings)
}

// checkpointState returns the connected header the checkpoint pins, nil when there is no
// checkpoint or its header has not been connected yet.
func (u *update) checkpointState() (*model.ChainState, error) {
	if !u.hasCheckpoint {
		return nil, nil
	}
	state, err := u.load(u.checkpoint.Hash)
	if err != nil {
		return nil, err
	}
	if state == nil || !state.Connected || state.Header.Height != u.checkpoint.Height {
		return nil, nil
	}
	return state, nil
}

// effective returns the tip a chain ending at state may contribute. An ineligible chain
// contributes its highest ancestor that is still eligible.
func (u *update) effective(state, anchor *model.ChainState) (candidate, error) {
	ok, err := u.eligibleAgainst(state, anchor)
	if err != nil {
		return candidate{}, err
	}

	switch {
	case ok:
	case anchor != nil:
		state, err = u.commonAncestor(state, anchor)
	default:
		state, err = u.ancestorAt(state, u.checkpoint.Height-1)
	}
	if err != nil {
		return candidate{}, err
	}

	current, err := u.onOldBestChain(state)
	if err != nil {
		return candidate{}, err
	}
	return candidate{state: state, current: current}, nil
}

// eligibleAgainst extends eligible: once the checkpoint header is connected, a chain below the
// checkpoint height must lead to it.
func (u *update) eligibleAgainst(state, anchor *model.ChainState) (bool, error) {
	if anchor == nil || state.Header.Height >= anchor.Header.Height {
		return u.eligible(state)
	}
	ancestor, err := u.ancestorAt(anchor, state.Header.Height)
	if err != nil {
		return false, err
	}
	return ancestor.Header.Hash == state.Header.Hash, nil
}

// commonAncestor returns the highest header shared by the chains ending at a and b.
func (u *update) commonAncestor(a, b *model.ChainState) (*model.ChainState, error) {
	var err error
	if a.Header.Height > b.Header.Height {
		if a, err = u.ancestorAt(a, b.Header.Height); err != nil {
			return nil, err
		}
	} else if b.Header.Height > a.Header.Height {
		if b, err = u.ancestorAt(b, a.Header.Height); err != nil {
			return nil, err
		}
	}
	for a.Header.Hash != b.Header.Hash {
		if a, err = u.loadConnected(a.Header.ParentHash); err != nil {
			return nil, err
		}
		if b, err = u.loadConnected(b.Header.ParentHash); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// switchTo makes target the best tip. siblings is the sibling set target was chosen from.
func (u *update) switchTo(target *model.ChainState, siblings []chainhash.Hash) error {
	old, err := u.loadConnected(u.best.Hash)
	if err != nil {
		return err
	}

	u.siblingRemove(target.Header.Hash)

	// The old tip stays a tip unless some other tip grew out of it.
	tips := append([]chainhash.Hash{target.Header.Hash}, siblings...)
	descended, err := u.anyDescends(tips, old)
	if err != nil {
		return err
	}
	if !descended {
		u.siblingAdd(old.Header.Hash)
	}

	path, ancestor, err := u.pathToBestChain(target)
	if err != nil {
		return err
	}

	removed := make([]model.Position, 0, u.best.Height-ancestor.Height)
	for height := ancestor.Height + 1; height <= u.best.Height; height++ {
		hash, ok, err := u.bestHashAt(height)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("best chain has no entry at height %d", height)
		}
		removed = append(removed, model.NewPosition(height, hash))
	}

	u.bestChange = &BestChainChange{Ancestor: ancestor, Added: path}
	u.reorg = &model.Reorg{Ancestor: ancestor, Removed: removed, Added: path}
	return nil
}

// anyDescends reports whether any of hashes names a header above base on base's chain.
func (u *update) anyDescends(hashes []chainhash.Hash, base *model.ChainState) (bool, error) {
	for _, hash := range hashes {
		if hash == base.Header.Hash {
			continue
		}
		state, err := u.loadConnected(hash)
		if err != nil {
			return false, err
		}
		if state.Header.Height <= base.Header.Height {
			continue
		}
		ancestor, err := u.ancestorAt(state, base.Header.Height)
		if err != nil {
			return false, err
		}
		if ancestor.Header.Hash == base.Header.Hash {
			return true, nil
		}
	}
	return false, nil
}

// pathToBestChain walks back from tip until it meets the best chain of this update's start.
// It returns the positions above the meeting point in ascending order and the meeting point.
func (u *update) pathToBestChain(tip *model.ChainState) ([]model.Position, model.Position, error) {
	var path []model.Position
	node := tip
	for {
		onBest, err := u.onOldBestChain(node)
		if err != nil {
			return nil, model.Position{}, err
		}
		if onBest {
			break
		}
		path = append(path, node.Position())
		if node, err = u.loadConnected(node.Header.ParentHash); err != nil {
			return nil, model.Position{}, err
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, node.Position(), nil
}
