package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/pkg/safe"
)

const insertChainEventsQuery = `
INSERT INTO chain_events (
	coin,
	network,
	occurred_at,
	ancestor_height,
	ancestor_hash,
	old_tip_height,
	old_tip_hash,
	new_tip_height,
	new_tip_hash,
	depth,
	added
) VALUES`

// InsertChainEvents stores one summary row per best chain change.
func (r *Repository) InsertChainEvents(ctx context.Context, events []model.Reorg) (err error) {
	start := time.Now()
	coin, network := chainOf(events)
	defer func() {
		r.metrics.Observe("insert_chain_events", coin, network, err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertChainEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare chain events batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = batch.Abort()
		}
	}()

	for _, event := range events {
		var row chainEventRow
		if row, err = newChainEventRow(event); err != nil {
			return err
		}
		if err = batch.Append(
			string(event.Chain.Coin),
			string(event.Chain.Network),
			event.OccurredAt,
			row.ancestorHeight,
			event.Ancestor.Hash.String(),
			row.oldTipHeight,
			event.OldTip().Hash.String(),
			row.newTipHeight,
			event.Tip().Hash.String(),
			row.depth,
			row.added,
		); err != nil {
			return fmt.Errorf("append chain event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chain events: %w", err)
	}
	return nil
}

type chainEventRow struct {
	ancestorHeight uint64
	oldTipHeight   uint64
	newTipHeight   uint64
	depth          uint32
	added          uint32
}

func newChainEventRow(event model.Reorg) (chainEventRow, error) {
	var (
		row chainEventRow
		err error
	)
	if row.ancestorHeight, err = safe.Uint64(event.Ancestor.Height); err != nil {
		return row, fmt.Errorf("chain event ancestor height: %w", err)
	}
	if row.oldTipHeight, err = safe.Uint64(event.OldTip().Height); err != nil {
		return row, fmt.Errorf("chain event old tip height: %w", err)
	}
	if row.newTipHeight, err = safe.Uint64(event.Tip().Height); err != nil {
		return row, fmt.Errorf("chain event new tip height: %w", err)
	}
	if row.depth, err = safe.Uint32(len(event.Removed)); err != nil {
		return row, fmt.Errorf("chain event depth: %w", err)
	}
	if row.added, err = safe.Uint32(len(event.Added)); err != nil {
		return row, fmt.Errorf("chain event added count: %w", err)
	}
	return row, nil
}
