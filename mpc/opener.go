package mpc

import (
	"github.com/Pro7ech/beaver/field"
	"github.com/Pro7ech/beaver/share"
)

// Opener is the broadcast capability consumed by the verifier: opening a
// sharing makes its secret public to every party. The underlying
// communication is assumed reliable and synchronous, and summation is
// commutative, so contributions may arrive in any order. An error models
// a party failing to contribute its entry, which aborts the run.
type Opener interface {
	Open(v share.Vector) (field.Element, error)
}

// LocalOpener opens sharings by direct in-process summation. It stands in
// for a real broadcast transport in single-process simulations and tests;
// swapping it for a networked [Opener] leaves the verifier unchanged.
type LocalOpener struct {
	f field.Parameters
}

// NewLocalOpener instantiates a [LocalOpener] over the given field.
func NewLocalOpener(f field.Parameters) *LocalOpener {
	return &LocalOpener{f: f}
}

// Open returns the sum of all entries of v.
func (o *LocalOpener) Open(v share.Vector) (field.Element, error) {
	return share.Reconstruct(o.f, v), nil
}
