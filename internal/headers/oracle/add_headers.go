package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"go.uber.org/zap"
)

// AddHeaders stores a batch of headers in any order and moves the best chain to the heaviest
// eligible tip. Known headers are skipped. Headers whose parent is not connected yet wait in the
// disconnected set and are connected by the batch that supplies their parent.
//
// The batch is validated as a whole: if any header is rejected nothing is stored.
func (o *HeaderOracle) AddHeaders(ctx context.Context, headers []model.Header) (err error) {
	started := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.ObserveAddHeaders(err, len(headers), started)
		}
	}()

	o.writeMu.Lock()
	defer o.writeMu.Unlock()

	err = o.edit(ctx, func(u *update) error {
		return o.addHeaders(u, headers)
	})
	if err != nil {
		o.logger.Warn("add headers rejected", zap.Int("headers", len(headers)), zap.Error(err))
		return err
	}
	return nil
}

func (o *HeaderOracle) addHeaders(u *update, headers []model.Header) error {
	fresh, err := o.validateBatch(u, headers)
	if err != nil {
		return err
	}
	if len(fresh) == 0 {
		return nil
	}

	byParent := make(map[chainhash.Hash][]model.Header, len(fresh))
	queue := make([]model.Header, 0, len(fresh))
	for _, h := range fresh {
		byParent[h.ParentHash] = append(byParent[h.ParentHash], h)
	}
	for _, h := range fresh {
		parent, err := u.load(h.ParentHash)
		if err != nil {
			return err
		}
		if parent != nil && parent.Connected {
			queue = append(queue, h)
		}
	}

	connected := make(map[chainhash.Hash]struct{}, len(fresh))
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if _, ok := connected[h.Hash]; ok {
			continue
		}

		if err := u.connect(h); err != nil {
			return err
		}
		connected[h.Hash] = struct{}{}

		queue = append(queue, byParent[h.Hash]...)

		waiting, err := u.db.DisconnectedChildren(u.ctx, h.Hash)
		if err != nil {
			return fmt.Errorf("load disconnected children of %s: %w", h.Hash, err)
		}
		for _, hash := range waiting {
			u.removeDisc = append(u.removeDisc, DisconnectedEdge{Parent: h.Hash, Child: hash})
			child, err := u.load(hash)
			if err != nil {
				return err
			}
			if child == nil || child.Connected {
				continue
			}
			queue = append(queue, child.Header)
		}
	}

	for _, h := range fresh {
		if _, ok := connected[h.Hash]; ok {
			continue
		}
		u.stage(model.ChainState{Header: h.WithHeight(model.UnknownHeight)})
		u.addDisc = append(u.addDisc, DisconnectedEdge{Parent: h.ParentHash, Child: h.Hash})
	}

	if len(connected) == 0 {
		o.logger.Debug("headers waiting for parents", zap.Int("headers", len(fresh)))
		return nil
	}
	return u.reevaluate()
}

// validateBatch rejects malformed headers and returns the ones not stored yet, without duplicates.
func (o *HeaderOracle) validateBatch(u *update, headers []model.Header) ([]model.Header, error) {
	fresh := make([]model.Header, 0, len(headers))
	seen := make(map[chainhash.Hash]model.Header, len(headers))

	for _, h := range headers {
		if h.Chain != o.chain {
			return nil, fmt.Errorf("%w: header %s is %s, oracle serves %s", ErrWrongChain, h.Hash, h.Chain, o.chain)
		}
		if err := validateHeader(h); err != nil {
			return nil, err
		}

		if prev, ok := seen[h.Hash]; ok {
			if !sameContent(prev, h) {
				return nil, fmt.Errorf("%w: conflicting copies of %s in batch", ErrMalformedHeader, h.Hash)
			}
			continue
		}
		seen[h.Hash] = h

		stored, err := u.load(h.Hash)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			fresh = append(fresh, h)
			continue
		}
		if !sameContent(stored.Header, h) {
			return nil, fmt.Errorf("%w: %s differs from the stored header", ErrMalformedHeader, h.Hash)
		}
		if stored.Connected && h.Height != model.UnknownHeight && h.Height != stored.Header.Height {
			return nil, fmt.Errorf("%w: %s claims height %d, stored at %d", ErrHeightMismatch, h.Hash, h.Height, stored.Header.Height)
		}
	}
	return fresh, nil
}

func validateHeader(h model.Header) error {
	switch {
	case h.Hash == (chainhash.Hash{}):
		return fmt.Errorf("%w: empty hash", ErrMalformedHeader)
	case h.ParentHash == h.Hash:
		return fmt.Errorf("%w: %s is its own parent", ErrMalformedHeader, h.Hash)
	case h.Work.IsZero():
		return fmt.Errorf("%w: %s carries no work", ErrMalformedHeader, h.Hash)
	case h.Height < model.UnknownHeight:
		return fmt.Errorf("%w: %s has height %d", ErrMalformedHeader, h.Hash, h.Height)
	}
	return nil
}

func sameContent(a, b model.Header) bool {
	return a.ParentHash == b.ParentHash && a.Work.Equal(b.Work)
}

// connect stages h as connected on top of its connected parent.
func (u *update) connect(h model.Header) error {
	parent, err := u.loadConnected(h.ParentHash)
	if err != nil {
		return err
	}

	height := parent.Header.Height + 1
	if h.Height != model.UnknownHeight && h.Height != height {
		return fmt.Errorf("%w: %s claims height %d, parent places it at %d", ErrHeightMismatch, h.Hash, h.Height, height)
	}

	u.stage(model.ChainState{
		Header:         h.WithHeight(height),
		CumulativeWork: parent.CumulativeWork.Add(h.Work),
		Connected:      true,
	})
	u.siblingRemove(parent.Header.Hash)
	u.siblingAdd(h.Hash)
	return nil
}
