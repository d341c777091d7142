package field

import (
	"fmt"
	"math/big"
)

// Element is an element of Z/pZ, held as its canonical representative in
// [0, p). The zero value is the field's zero element. Elements are
// immutable: every operation allocates a fresh [Element] and leaves its
// operands untouched, so elements can be shared across goroutines freely.
//
// Arithmetic is provided by [Parameters], which carries the modulus.
type Element struct {
	v big.Int
}

// Equal returns whether the receiver and the operand hold the same value.
func (a Element) Equal(b Element) bool {
	return a.v.Cmp(&b.v) == 0
}

// IsZero returns whether the receiver is the additive identity.
func (a Element) IsZero() bool {
	return a.v.Sign() == 0
}

// Big returns a copy of the receiver's canonical representative.
func (a Element) Big() *big.Int {
	return new(big.Int).Set(&a.v)
}

// Uint64 returns the receiver's canonical representative. It is only
// meaningful for moduli below 2^64.
func (a Element) Uint64() uint64 {
	return a.v.Uint64()
}

func (a Element) String() string {
	return a.v.String()
}

// Add returns a + b mod p.
func (f Parameters) Add(a, b Element) Element {
	v := new(big.Int).Add(&a.v, &b.v)
	v.Mod(v, f.p)
	return Element{v: *v}
}

// Sub returns a - b mod p.
func (f Parameters) Sub(a, b Element) Element {
	v := new(big.Int).Sub(&a.v, &b.v)
	v.Mod(v, f.p)
	return Element{v: *v}
}

// Mul returns a * b mod p.
func (f Parameters) Mul(a, b Element) Element {
	v := new(big.Int).Mul(&a.v, &b.v)
	v.Mod(v, f.p)
	return Element{v: *v}
}

// Neg returns -a mod p.
func (f Parameters) Neg(a Element) Element {
	v := new(big.Int).Neg(&a.v)
	v.Mod(v, f.p)
	return Element{v: *v}
}

// Inv returns a^-1 mod p. The zero element has no inverse.
func (f Parameters) Inv(a Element) (Element, error) {
	if a.IsZero() {
		return Element{}, fmt.Errorf("cannot Inv: zero has no multiplicative inverse")
	}
	v := new(big.Int).ModInverse(&a.v, f.p)
	return Element{v: *v}, nil
}

// Exp returns a^k mod p for k >= 0.
func (f Parameters) Exp(a Element, k *big.Int) Element {
	v := new(big.Int).Exp(&a.v, k, f.p)
	return Element{v: *v}
}
