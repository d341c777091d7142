package mpc

import (
	"fmt"

	"github.com/Pro7ech/beaver/field"
	"github.com/Pro7ech/beaver/share"
	"github.com/Pro7ech/beaver/utils/sampling"
)

// Triple is an additive sharing of a multiplicative triple (a, b, c):
// three share vectors over the same party set whose underlying secrets
// are meant to satisfy a*b = c. The relation is a property of how the
// triple was generated, not of the type; [NewTriple] validates party
// counts only.
type Triple struct {
	A, B, C share.Vector
}

// NewTriple instantiates a [Triple] from the sharings of its three
// components, validating that they cover the same party set.
func NewTriple(a, b, c share.Vector) (*Triple, error) {

	if a.N() != b.N() || a.N() != c.N() {
		return nil, fmt.Errorf("cannot NewTriple: party count mismatch: |a|=%d, |b|=%d, |c|=%d", a.N(), b.N(), c.N())
	}

	if a.N() < 2 {
		return nil, fmt.Errorf("cannot NewTriple: %d parties, need at least 2", a.N())
	}

	return &Triple{A: a, B: b, C: c}, nil
}

// N returns the number of parties of the sharing.
func (t *Triple) N() int {
	return t.A.N()
}

// Equal performs a deep equal between the receiver and the operand.
func (t *Triple) Equal(other *Triple) bool {
	return t.A.Equal(other.A) && t.B.Equal(other.B) && t.C.Equal(other.C)
}

// Deal shares the multiplicative triple (a, b, a*b) across n parties.
//
// Deal is meant for a caller that holds the secrets in the clear, such as
// a trusted setup or a test fixture. It is not a multiparty
// triple-generation protocol: a deployment obtains its triples from an
// external generation protocol and only their sharings ever exist.
func Deal(f field.Parameters, a, b field.Element, n int, source *sampling.Source) (*Triple, error) {

	va, err := share.Share(f, a, n, source)
	if err != nil {
		return nil, fmt.Errorf("cannot Deal: %w", err)
	}

	vb, err := share.Share(f, b, n, source)
	if err != nil {
		return nil, fmt.Errorf("cannot Deal: %w", err)
	}

	vc, err := share.Share(f, f.Mul(a, b), n, source)
	if err != nil {
		return nil, fmt.Errorf("cannot Deal: %w", err)
	}

	return NewTriple(va, vb, vc)
}

// DealRandom deals a triple over fresh uniform secrets.
func DealRandom(f field.Parameters, n int, source *sampling.Source) (*Triple, error) {
	return Deal(f, f.RandomElement(source), f.RandomElement(source), n, source)
}
