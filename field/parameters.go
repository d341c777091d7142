// Package field implements arithmetic over the prime field Z/pZ for a
// user-chosen prime modulus p.
//
// The modulus is a security parameter: the soundness error of the checks
// built on top of this package is 1/p, so a real deployment must pick a
// cryptographically sized prime. Nothing in this package assumes a
// particular size beyond primality.
package field

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/beaver/utils/bignum"
	"github.com/Pro7ech/beaver/utils/sampling"
)

// primalityRounds is the number of Miller-Rabin rounds applied to a
// candidate modulus. 20 rounds bound the false-positive probability by
// 2^-40 even for adversarially chosen inputs.
const primalityRounds = 20

// Parameters holds the public modulus p of a prime field Z/pZ and acts as
// the operator for all arithmetic over that field. Parameters are immutable
// once created and are threaded explicitly through every constructor of
// this library, so protocol instances over distinct fields can coexist
// within the same process.
type Parameters struct {
	p *big.Int
}

// NewParameters instantiates [Parameters] for the prime modulus p.
// A composite or undersized modulus is a configuration error reported
// here, never at protocol run-time.
func NewParameters(p *big.Int) (Parameters, error) {
	if p == nil {
		return Parameters{}, fmt.Errorf("invalid modulus: nil")
	}
	if p.Cmp(bignum.NewInt(2)) < 0 {
		return Parameters{}, fmt.Errorf("invalid modulus %s: a field has at least two elements", p)
	}
	if !p.ProbablyPrime(primalityRounds) {
		return Parameters{}, fmt.Errorf("invalid modulus %s: not prime", p)
	}
	return Parameters{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of the modulus p.
func (f Parameters) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLen returns the bit length of the modulus.
func (f Parameters) BitLen() int {
	return f.p.BitLen()
}

// ByteLen returns the byte length of the canonical encoding of an [Element].
func (f Parameters) ByteLen() int {
	return (f.p.BitLen() + 7) >> 3
}

// Equal returns whether the receiver and the operand define the same field.
func (f Parameters) Equal(other Parameters) bool {
	switch {
	case f.p == nil, other.p == nil:
		return f.p == nil && other.p == nil
	default:
		return f.p.Cmp(other.p) == 0
	}
}

// NewElement instantiates a new [Element] from x reduced modulo p.
// Accepted types for x are those of [bignum.NewInt]; negative values
// reduce to their non-negative residue.
func (f Parameters) NewElement(x interface{}) Element {
	v := bignum.NewInt(x)
	v.Mod(v, f.p)
	return Element{v: *v}
}

// Zero returns the additive identity of the field.
func (f Parameters) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity of the field.
func (f Parameters) One() Element {
	return f.NewElement(1)
}

// RandomElement samples an [Element] uniformly over all p residues by
// rejection sampling on the masked byte stream of source.
func (f Parameters) RandomElement(source *sampling.Source) Element {
	return Element{v: *bignum.RandInt(source, f.p)}
}

// Bytes returns the canonical fixed-width big-endian encoding of a.
func (f Parameters) Bytes(a Element) []byte {
	return a.v.FillBytes(make([]byte, f.ByteLen()))
}

// SetBytes decodes an [Element] from its canonical encoding, rejecting
// values outside [0, p).
func (f Parameters) SetBytes(data []byte) (Element, error) {
	v := new(big.Int).SetBytes(data)
	if v.Cmp(f.p) >= 0 {
		return Element{}, fmt.Errorf("invalid element encoding: %s >= modulus %s", v, f.p)
	}
	return Element{v: *v}, nil
}
