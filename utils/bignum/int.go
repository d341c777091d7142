// Package bignum provides helpers for arbitrary precision arithmetic.
package bignum

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Int, but is %T", x))
	}

	return
}

// RandInt generates a random Int in [0, max-1] by rejection sampling
// over the masked top limb of the reader's byte stream.
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {

	if max.Sign() <= 0 {
		panic(fmt.Sprintf("cannot RandInt: max=%s <= 0", max))
	}

	bitLen := max.BitLen()
	byteLen := (bitLen + 7) >> 3
	mask := byte(0xff >> (8*byteLen - bitLen))

	buf := make([]byte, byteLen)

	n = new(big.Int)

	for {
		if _, err := io.ReadFull(reader, buf); err != nil {
			panic(fmt.Errorf("RandInt: %w", err))
		}

		buf[0] &= mask

		if n.SetBytes(buf); n.Cmp(max) < 0 {
			return
		}
	}
}

// Log returns ln(x) with prec bits of mantissa.
func Log(x *big.Float, prec uint) (y *big.Float) {
	return bigfloat.Log(new(big.Float).SetPrec(prec).Set(x))
}
