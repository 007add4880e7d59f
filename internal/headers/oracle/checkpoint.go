package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"go.uber.org/zap"
)

const (
	checkpointAdd    = "add"
	checkpointDelete = "delete"
)

// AddCheckpoint pins hash at height. Installing the installed checkpoint again is a no-op; a
// different one must be deleted first. A checkpoint that contradicts the best chain is refused
// unless the oracle was built WithCheckpointReorg, in which case the best chain moves to the
// heaviest chain that honours it.
func (o *HeaderOracle) AddCheckpoint(ctx context.Context, height int64, hash chainhash.Hash) (err error) {
	started := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.ObserveCheckpoint(checkpointAdd, err, started)
		}
	}()

	if height < 1 || hash == (chainhash.Hash{}) {
		return fmt.Errorf("%w: %d:%s", ErrInvalidCheckpoint, height, hash)
	}
	cp := model.Checkpoint{Height: height, Hash: hash}

	o.writeMu.Lock()
	defer o.writeMu.Unlock()

	err = o.edit(ctx, func(u *update) error {
		if u.hasCheckpoint {
			if u.checkpoint == cp {
				return nil
			}
			return fmt.Errorf("%w: checkpoint %s already installed", ErrCheckpointConflict, u.checkpoint)
		}

		stored, err := u.load(hash)
		if err != nil {
			return err
		}
		if stored != nil && stored.Connected && stored.Header.Height != height {
			return fmt.Errorf("%w: %s is stored at height %d", ErrCheckpointConflict, hash, stored.Header.Height)
		}

		best, ok, err := u.bestHashAt(height)
		if err != nil {
			return err
		}
		if ok && best != hash && !o.checkpointReorg {
			return fmt.Errorf("%w: best chain has %s at height %d", ErrCheckpointConflict, best, height)
		}

		u.setCheckpoint(cp)
		return u.reevaluate()
	})
	if err != nil {
		o.logger.Warn("add checkpoint rejected", zap.Stringer("checkpoint", cp), zap.Error(err))
		return err
	}
	o.logger.Info("checkpoint installed", zap.Stringer("checkpoint", cp), zap.Stringer("best", o.BestChain()))
	return nil
}

// DeleteCheckpoint removes the checkpoint and re-selects the best tip among all known tips.
func (o *HeaderOracle) DeleteCheckpoint(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.ObserveCheckpoint(checkpointDelete, err, started)
		}
	}()

	o.writeMu.Lock()
	defer o.writeMu.Unlock()

	err = o.edit(ctx, func(u *update) error {
		if !u.hasCheckpoint {
			return ErrNoCheckpoint
		}
		u.clearCheckpoint()
		return u.reevaluate()
	})
	if err != nil {
		return err
	}
	o.logger.Info("checkpoint deleted", zap.Stringer("best", o.BestChain()))
	return nil
}
