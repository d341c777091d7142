package mpc

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/beaver/field"
	"github.com/Pro7ech/beaver/utils/bignum"
)

// soundnessPrec is the mantissa precision used by the soundness helpers.
const soundnessPrec = 128

// SoundnessError returns 1/p, the probability that a single run accepts
// an invalid target triple when the helper triple is valid.
func SoundnessError(f field.Parameters) *big.Float {
	p := new(big.Float).SetPrec(soundnessPrec).SetInt(f.Modulus())
	return p.Quo(new(big.Float).SetPrec(soundnessPrec).SetInt64(1), p)
}

// Repetitions returns the number of independent runs, each with a fresh
// challenge and ideally a fresh helper triple, required to drive the
// false-accept probability below delta: ceil(log(1/delta)/log(p)).
func Repetitions(f field.Parameters, delta float64) (int, error) {

	if delta <= 0 || delta >= 1 {
		return 0, fmt.Errorf("cannot Repetitions: delta=%g not in (0, 1)", delta)
	}

	num := bignum.Log(big.NewFloat(delta), soundnessPrec)
	num.Neg(num)

	den := bignum.Log(new(big.Float).SetPrec(soundnessPrec).SetInt(f.Modulus()), soundnessPrec)

	reps, acc := num.Quo(num, den).Int(nil)
	if acc != big.Exact {
		reps.Add(reps, bignum.NewInt(1))
	}

	return int(reps.Int64()), nil
}
