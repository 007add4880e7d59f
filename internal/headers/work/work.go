// Package work provides exact arithmetic and ordering over proof-of-work values.
package work

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/blockchain"
)

var errNegative = errors.New("work must not be negative")

// Work is an unsigned, arbitrary-precision amount of proof of work.
// The zero value is zero work. Values are immutable; every operation returns a new Work.
type Work struct {
	v *big.Int
}

// FromUint64 returns the work value n.
func FromUint64(n uint64) Work {
	return Work{v: new(big.Int).SetUint64(n)}
}

// FromBits returns the work represented by a header's compact difficulty bits.
func FromBits(bits uint32) Work {
	return Work{v: blockchain.CalcWork(bits)}
}

// FromBig copies v into a Work.
func FromBig(v *big.Int) (Work, error) {
	if v == nil {
		return Work{}, nil
	}
	if v.Sign() < 0 {
		return Work{}, errNegative
	}
	return Work{v: new(big.Int).Set(v)}, nil
}

// ParseDecimal parses the output of String.
func ParseDecimal(s string) (Work, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Work{}, fmt.Errorf("parse decimal work %q", s)
	}
	return FromBig(v)
}

// ParseHex parses the output of Hex. A leading 0x is optional.
func ParseHex(s string) (Work, error) {
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		return Work{}, fmt.Errorf("parse hex work %q", s)
	}
	return FromBig(v)
}

func (w Work) big() *big.Int {
	if w.v == nil {
		return new(big.Int)
	}
	return w.v
}

// Big returns a copy of the underlying integer.
func (w Work) Big() *big.Int {
	return new(big.Int).Set(w.big())
}

// Add returns w + o.
func (w Work) Add(o Work) Work {
	return Work{v: new(big.Int).Add(w.big(), o.big())}
}

// Cmp returns -1, 0 or +1 as w is less than, equal to or greater than o.
func (w Work) Cmp(o Work) int {
	return w.big().Cmp(o.big())
}

func (w Work) Less(o Work) bool           { return w.Cmp(o) < 0 }
func (w Work) LessOrEqual(o Work) bool    { return w.Cmp(o) <= 0 }
func (w Work) Equal(o Work) bool          { return w.Cmp(o) == 0 }
func (w Work) NotEqual(o Work) bool       { return w.Cmp(o) != 0 }
func (w Work) Greater(o Work) bool        { return w.Cmp(o) > 0 }
func (w Work) GreaterOrEqual(o Work) bool { return w.Cmp(o) >= 0 }

// IsZero reports whether w is zero.
func (w Work) IsZero() bool {
	return w.big().Sign() == 0
}

// String returns the decimal representation.
func (w Work) String() string {
	return w.big().String()
}

// Hex returns the lowercase hexadecimal representation without prefix.
func (w Work) Hex() string {
	return w.big().Text(16)
}
