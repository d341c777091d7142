// Package share implements additive secret sharing of prime-field values
// across a fixed set of parties, together with the local homomorphic
// operations that preserve the sharing invariant.
//
// A secret s is represented by a [Vector] of N field elements whose sum,
// modulo p, equals s. Any N-1 entries are jointly uniform and therefore
// reveal nothing about the secret: the scheme is perfectly hiding against
// up to N-1 colluding parties. The sum is never materialized except by an
// explicit call to [Reconstruct], which models a public broadcast.
//
// In a deployment each party holds exactly one entry of every vector; this
// package keeps whole vectors in one process for simulation, but every
// operation other than [Reconstruct] touches each entry independently and
// so maps directly onto per-party local computation.
package share

import (
	"fmt"

	"github.com/Pro7ech/beaver/field"
	"github.com/Pro7ech/beaver/utils/sampling"
	"github.com/google/go-cmp/cmp"
)

// Vector is an additive sharing of one field element across len(v) parties.
// Party i (1-indexed in protocol descriptions) holds entry i-1.
type Vector []field.Element

// N returns the number of parties of the sharing.
func (v Vector) N() int {
	return len(v)
}

// Clone returns a deep copy of the receiver.
func (v Vector) Clone() (vcpy Vector) {
	vcpy = make(Vector, len(v))
	copy(vcpy, v)
	return
}

// Equal performs a deep equal between the receiver and the operand.
func (v Vector) Equal(other Vector) bool {
	return cmp.Equal([]field.Element(v), []field.Element(other))
}

// Share splits secret into a fresh [Vector] over n parties: the first n-1
// entries are independent uniform samples from source and the last entry is
// the residual secret - sum(first n-1) mod p, so the entries sum to the
// secret while any n-1 of them remain jointly uniform.
func Share(f field.Parameters, secret field.Element, n int, source *sampling.Source) (Vector, error) {

	if n < 2 {
		return nil, fmt.Errorf("cannot Share: n=%d parties, need at least 2", n)
	}

	v := make(Vector, n)

	acc := f.Zero()
	for i := 0; i < n-1; i++ {
		v[i] = f.RandomElement(source)
		acc = f.Add(acc, v[i])
	}
	v[n-1] = f.Sub(secret, acc)

	return v, nil
}

// Reconstruct sums all entries of v, returning the shared secret.
//
// This is the only operation that leaks the secret: it models the public
// opening of the sharing, in which every party broadcasts its entry. It
// must only be invoked when the protocol intends the value to become
// public.
func Reconstruct(f field.Parameters, v Vector) field.Element {
	acc := f.Zero()
	for i := range v {
		acc = f.Add(acc, v[i])
	}
	return acc
}

// Add returns the entrywise sum of u and v, a sharing of the sum of the
// two secrets. No communication between parties is involved.
func Add(f field.Parameters, u, v Vector) (Vector, error) {

	if u.N() != v.N() {
		return nil, fmt.Errorf("cannot Add: party count mismatch: %d != %d", u.N(), v.N())
	}

	w := make(Vector, len(u))
	for i := range u {
		w[i] = f.Add(u[i], v[i])
	}
	return w, nil
}

// AddConstant returns a sharing of secret(u) + c. The constant is added to
// party 1's entry only; every other entry is unchanged. Spreading the
// constant over several entries would break the sum invariant, since all
// parties know c and would each add it.
func AddConstant(f field.Parameters, u Vector, c field.Element) Vector {
	w := u.Clone()
	w[0] = f.Add(w[0], c)
	return w
}

// Scale returns a sharing of c * secret(u): every entry is multiplied by
// the public scalar c.
func Scale(f field.Parameters, u Vector, c field.Element) Vector {
	w := make(Vector, len(u))
	for i := range u {
		w[i] = f.Mul(u[i], c)
	}
	return w
}
