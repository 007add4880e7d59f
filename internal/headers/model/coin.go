// Package model defines the value types shared by the header oracle and its collaborators.
package model

import "fmt"

type Coin string
type Network string

var (
	BTC Coin = "BTC"
	BCH Coin = "BCH"
	LTC Coin = "LTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// ChainType identifies one header chain. Headers of different chain types are never compared.
type ChainType struct {
	Coin    Coin
	Network Network
}

// NewChainType builds a ChainType from its parts.
func NewChainType(coin Coin, network Network) ChainType {
	return ChainType{Coin: coin, Network: network}
}

func (c ChainType) String() string {
	return fmt.Sprintf("%s/%s", c.Coin, c.Network)
}

// IsZero reports whether the chain type is unset.
func (c ChainType) IsZero() bool {
	return c.Coin == "" && c.Network == ""
}
