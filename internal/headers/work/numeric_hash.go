package work

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)

// NumericHash is a 256-bit hash or difficulty target interpreted as an unsigned integer.
type NumericHash struct {
	v *big.Int
}

// HashToNumeric interprets a block hash the way proof-of-work comparisons do.
func HashToNumeric(hash chainhash.Hash) NumericHash {
	return NumericHash{v: blockchain.HashToBig(&hash)}
}

// TargetFromBits expands compact difficulty bits into the target they encode.
func TargetFromBits(bits uint32) NumericHash {
	return NumericHash{v: blockchain.CompactToBig(bits)}
}

func (n NumericHash) big() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}
	return n.v
}

// Cmp returns -1, 0 or +1 as n is less than, equal to or greater than o.
func (n NumericHash) Cmp(o NumericHash) int {
	return n.big().Cmp(o.big())
}

func (n NumericHash) Less(o NumericHash) bool           { return n.Cmp(o) < 0 }
func (n NumericHash) LessOrEqual(o NumericHash) bool    { return n.Cmp(o) <= 0 }
func (n NumericHash) Equal(o NumericHash) bool          { return n.Cmp(o) == 0 }
func (n NumericHash) NotEqual(o NumericHash) bool       { return n.Cmp(o) != 0 }
func (n NumericHash) Greater(o NumericHash) bool        { return n.Cmp(o) > 0 }
func (n NumericHash) GreaterOrEqual(o NumericHash) bool { return n.Cmp(o) >= 0 }

// Work returns the expected work to find a hash at or below target n, 2^256 / (n + 1).
// Non-positive targets carry no work.
func (n NumericHash) Work() Work {
	if n.big().Sign() <= 0 {
		return Work{}
	}
	denominator := new(big.Int).Add(n.big(), big.NewInt(1))
	return Work{v: new(big.Int).Div(oneLsh256, denominator)}
}

// String returns the decimal representation.
func (n NumericHash) String() string {
	return n.big().String()
}

// Hex returns the 64-character, zero padded hexadecimal representation.
func (n NumericHash) Hex() string {
	const width = 64
	s := n.big().Text(16)
	if len(s) >= width {
		return s
	}
	pad := make([]byte, width-len(s))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + s
}
