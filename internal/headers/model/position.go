package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Position identifies one point on a chain.
type Position struct {
	Height int64
	Hash   chainhash.Hash
}

// NewPosition builds a Position.
func NewPosition(height int64, hash chainhash.Hash) Position {
	return Position{Height: height, Hash: hash}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%s", p.Height, p.Hash)
}

// IsZero reports whether the position is unset.
func (p Position) IsZero() bool {
	return p.Height == 0 && p.Hash == (chainhash.Hash{})
}

// Checkpoint pins the hash the best chain must carry at Height.
type Checkpoint struct {
	Height int64
	Hash   chainhash.Hash
}

// Position returns the checkpoint as a Position.
func (c Checkpoint) Position() Position {
	return Position{Height: c.Height, Hash: c.Hash}
}

func (c Checkpoint) String() string {
	return c.Position().String()
}
