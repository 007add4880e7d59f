// Package chain holds the chain-type specific functions the oracle dispatches on: genesis
// headers, wire conversion and proof-of-work checks.
package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/work"
	ltcchaincfg "github.com/ltcsuite/ltcd/chaincfg"
)

type genesis struct {
	hash chainhash.Hash
	bits uint32
}

var genesisByChain = map[model.ChainType]genesis{
	model.NewChainType(model.BTC, model.Mainnet): fromBtcd(&chaincfg.MainNetParams),
	model.NewChainType(model.BTC, model.Testnet): fromBtcd(&chaincfg.TestNet3Params),
	model.NewChainType(model.BTC, model.Regtest): fromBtcd(&chaincfg.RegressionNetParams),
	model.NewChainType(model.BTC, model.Signet):  fromBtcd(&chaincfg.SigNetParams),
	// Bitcoin Cash shares Bitcoin's history up to the fork, genesis included.
	model.NewChainType(model.BCH, model.Mainnet): fromBtcd(&chaincfg.MainNetParams),
	model.NewChainType(model.BCH, model.Testnet): fromBtcd(&chaincfg.TestNet3Params),
	model.NewChainType(model.BCH, model.Regtest): fromBtcd(&chaincfg.RegressionNetParams),
	model.NewChainType(model.LTC, model.Mainnet): fromLtcd(&ltcchaincfg.MainNetParams),
	model.NewChainType(model.LTC, model.Testnet): fromLtcd(&ltcchaincfg.TestNet4Params),
	model.NewChainType(model.LTC, model.Regtest): fromLtcd(&ltcchaincfg.RegressionNetParams),
}

func fromBtcd(params *chaincfg.Params) genesis {
	return genesis{hash: *params.GenesisHash, bits: params.GenesisBlock.Header.Bits}
}

func fromLtcd(params *ltcchaincfg.Params) genesis {
	return genesis{hash: chainhash.Hash(*params.GenesisHash), bits: params.GenesisBlock.Header.Bits}
}

// Supported reports whether the chain type has known parameters.
func Supported(chainType model.ChainType) bool {
	_, ok := genesisByChain[chainType]
	return ok
}

// Genesis returns the genesis header of a chain at height 0.
func Genesis(chainType model.ChainType) (model.Header, error) {
	g, ok := genesisByChain[chainType]
	if !ok {
		return model.Header{}, fmt.Errorf("unsupported chain %s", chainType)
	}
	return model.Header{
		Chain:  chainType,
		Hash:   g.hash,
		Height: 0,
		Work:   work.FromBits(g.bits),
	}, nil
}
