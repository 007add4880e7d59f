// Package bitcoin reads block headers from a bitcoind-compatible node.
package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/headeroracle/internal/headers/chain"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultWorkerCount = 8

// HeaderSource fetches best-chain headers by height from a node.
type HeaderSource struct {
	rpc     RPCClient
	chain   model.ChainType
	workers int
	logger  *zap.Logger
}

// NewHeaderSource creates a HeaderSource. workers bounds the concurrent RPC calls per fetch.
func NewHeaderSource(rpc RPCClient, chainType model.ChainType, workers int, logger *zap.Logger) (*HeaderSource, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	if !chain.Supported(chainType) {
		return nil, fmt.Errorf("unsupported chain %s", chainType)
	}
	if workers < 1 {
		workers = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HeaderSource{
		rpc:     rpc,
		chain:   chainType,
		workers: workers,
		logger:  logger.Named("headerSource"),
	}, nil
}

// LatestHeight returns the height of the node's best block.
func (s *HeaderSource) LatestHeight(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	if count < 0 {
		return 0, fmt.Errorf("node reported negative block count %d", count)
	}
	return count, nil
}

// FetchHeaders returns the node's headers for heights from..to inclusive, ascending.
func (s *HeaderSource) FetchHeaders(ctx context.Context, from, to int64) ([]model.Header, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid height range %d..%d", from, to)
	}

	heights := make([]int64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}

	headers, err := workerpool.Map(ctx, s.workers, heights, s.FetchHeader)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched headers", zap.Int64("from", from), zap.Int64("to", to))
	return headers, nil
}

// FetchHeader returns the node's best-chain header at height.
func (s *HeaderSource) FetchHeader(ctx context.Context, height int64) (model.Header, error) {
	if err := ctx.Err(); err != nil {
		return model.Header{}, err
	}
	hash, err := s.rpc.GetBlockHash(height)
	if err != nil {
		return model.Header{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	raw, err := s.rpc.GetBlockHeader(hash)
	if err != nil {
		return model.Header{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	if got := raw.BlockHash(); got != *hash {
		return model.Header{}, fmt.Errorf("header at height %d hashes to %s, node reported %s", height, got, hash)
	}
	if err = chain.CheckProofOfWork(s.chain, raw); err != nil {
		return model.Header{}, fmt.Errorf("header at height %d: %w", height, err)
	}
	return chain.FromWire(s.chain, raw, height), nil
}
