package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

type (
	HeaderOracle interface {
		Chain() model.ChainType
		BestChain() model.Position
		GetCheckpoint() (model.Checkpoint, bool)
		LoadHeader(ctx context.Context, hash chainhash.Hash) (*model.Header, error)
		IsInBestChain(ctx context.Context, pos model.Position) (bool, error)
		CalculateReorg(ctx context.Context, tip model.Position) ([]model.Position, error)
	}
)
