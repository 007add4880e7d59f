package main

import (
	"context"
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/clock"
	"github.com/goodnatureofminers/headeroracle/internal/headers/storage/badger"
	"go.uber.org/zap"
)

const gcDiscardRatio = 0.5

func runValueLogGC(ctx context.Context, store *badger.Store, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		return
	}
	for {
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return
		}
		if err := store.RunGC(gcDiscardRatio); err != nil {
			logger.Warn("badger value log gc failed", zap.Error(err))
		}
	}
}
