// Package rpcclient instruments the btcd RPC client with metrics.
package rpcclient

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ObservedClient records every header RPC call it forwards.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

// NewObservedClient wraps client. Pass a *rpcclient.Client in production.
func NewObservedClient(client Client, rpcMetrics RPCMetrics) (*ObservedClient, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}, nil
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

func (r *ObservedClient) GetBlockHeader(blockHash *chainhash.Hash) (header *wire.BlockHeader, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header", err, started)
	}()
	return r.client.GetBlockHeader(blockHash)
}
