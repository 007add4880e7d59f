package oracle

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

// reorgAttempts bounds how often CalculateReorg recomputes when a commit overlaps it before it
// waits for the writer.
const reorgAttempts = 2

// CalculateReorg returns the positions that would join the best chain if tip became the best
// tip: everything above the point where tip's ancestry meets the best chain, ascending and ending
// at tip. The result is empty when tip already lies on the best chain.
//
// It reads without the writer lock, so a Notifier may call it. The walk is repeated when a
// commit overlapped it.
func (o *HeaderOracle) CalculateReorg(ctx context.Context, tip model.Position) ([]model.Position, error) {
	for attempt := 0; attempt < reorgAttempts; attempt++ {
		seq := o.commits.Load()
		if seq%2 == 1 {
			continue
		}
		path, err := o.calculateReorg(ctx, o.snapshot(), tip)
		if o.commits.Load() == seq {
			return path, err
		}
	}

	o.writeMu.Lock()
	defer o.writeMu.Unlock()
	return o.calculateReorg(ctx, o.snapshot(), tip)
}

func (o *HeaderOracle) calculateReorg(ctx context.Context, snap snapshot, tip model.Position) ([]model.Position, error) {
	u := newUpdate(ctx, o.db, snap)
	state, err := u.load(tip.Hash)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHeader, tip.Hash)
	}
	if !state.Connected {
		return nil, fmt.Errorf("%w: %s", ErrNotConnected, tip.Hash)
	}
	if state.Header.Height != tip.Height {
		return nil, fmt.Errorf("%w: %s is stored at height %d, not %d", ErrHeightMismatch, tip.Hash, state.Header.Height, tip.Height)
	}

	path, _, err := u.pathToBestChain(state)
	if err != nil {
		return nil, err
	}
	return path, nil
}
