package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/pkg/safe"
)

const (
	positionRemoved = "removed"
	positionAdded   = "added"
)

const insertChainEventPositionsQuery = `
INSERT INTO chain_event_positions (
	coin,
	network,
	occurred_at,
	new_tip_hash,
	change,
	height,
	hash
) VALUES`

// InsertChainEventPositions stores every demoted and promoted position of the events.
func (r *Repository) InsertChainEventPositions(ctx context.Context, events []model.Reorg) (err error) {
	start := time.Now()
	coin, network := chainOf(events)
	defer func() {
		r.metrics.Observe("insert_chain_event_positions", coin, network, err, start)
	}()

	rows := 0
	for _, event := range events {
		rows += len(event.Removed) + len(event.Added)
	}
	if rows == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertChainEventPositionsQuery)
	if err != nil {
		return fmt.Errorf("prepare chain event positions batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = batch.Abort()
		}
	}()

	for _, event := range events {
		tip := event.Tip().Hash.String()
		for _, change := range []struct {
			kind      string
			positions []model.Position
		}{
			{kind: positionRemoved, positions: event.Removed},
			{kind: positionAdded, positions: event.Added},
		} {
			for _, pos := range change.positions {
				var height uint64
				if height, err = safe.Uint64(pos.Height); err != nil {
					return fmt.Errorf("chain event position height: %w", err)
				}
				if err = batch.Append(
					string(event.Chain.Coin),
					string(event.Chain.Network),
					event.OccurredAt,
					tip,
					change.kind,
					height,
					pos.Hash.String(),
				); err != nil {
					return fmt.Errorf("append chain event position: %w", err)
				}
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chain event positions: %w", err)
	}
	return nil
}
