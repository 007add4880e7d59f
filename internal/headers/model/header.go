package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/work"
)

// UnknownHeight marks a header whose height has not been established by connecting it to its parent.
const UnknownHeight int64 = -1

// Header is an immutable block header as seen by the oracle.
type Header struct {
	Chain      ChainType
	Hash       chainhash.Hash
	ParentHash chainhash.Hash
	// Height is UnknownHeight until the header is connected.
	Height int64
	// Work is the proof-of-work value of this block alone.
	Work work.Work
}

// Position returns the header's position. Only meaningful once Height is known.
func (h Header) Position() Position {
	return Position{Height: h.Height, Hash: h.Hash}
}

// WithHeight returns a copy of the header placed at height.
func (h Header) WithHeight(height int64) Header {
	h.Height = height
	return h
}

// ChainState is the persisted record kept for every known header.
type ChainState struct {
	Header         Header
	CumulativeWork work.Work
	Connected      bool
}

// Position returns the position of the stored header.
func (s ChainState) Position() Position {
	return s.Header.Position()
}
