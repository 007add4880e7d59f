package follower

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

type (
	HeaderSource interface {
		LatestHeight(ctx context.Context) (int64, error)
		FetchHeaders(ctx context.Context, from, to int64) ([]model.Header, error)
	}
	HeaderOracle interface {
		BestChain() model.Position
		AddHeaders(ctx context.Context, headers []model.Header) error
		LoadHeader(ctx context.Context, hash chainhash.Hash) (*model.Header, error)
	}
	Metrics interface {
		ObserveSync(err error, headers int, started time.Time)
		ObserveLookback(lookback int64)
	}
)
