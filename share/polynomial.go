package share

import (
	"fmt"

	"github.com/Pro7ech/beaver/field"
)

// Polynomial is a polynomial whose coefficients are each an independently
// shared field element. Coeffs[i] is the sharing of the degree-i
// coefficient; all coefficients share the same party count and party
// indexing.
type Polynomial struct {
	Coeffs []Vector
}

// NewPolynomial instantiates a [Polynomial] from the shared coefficients,
// degree 0 first. All coefficient vectors must have the same party count.
func NewPolynomial(coeffs []Vector) (*Polynomial, error) {

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot NewPolynomial: no coefficients")
	}

	n := coeffs[0].N()
	for i := range coeffs {
		if coeffs[i].N() != n {
			return nil, fmt.Errorf("cannot NewPolynomial: party count mismatch: coefficient 0 has %d, coefficient %d has %d", n, i, coeffs[i].N())
		}
	}

	return &Polynomial{Coeffs: coeffs}, nil
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// N returns the number of parties of the coefficient sharings.
func (p *Polynomial) N() int {
	return p.Coeffs[0].N()
}

// Evaluate returns a sharing of the polynomial evaluated at the public
// point: party i Horner-evaluates the local polynomial formed by its own
// entry of every coefficient. Because evaluation at a fixed point is a
// linear functional of the coefficients, the local results form a valid
// sharing of the evaluation, with no communication and no fresh
// randomness.
func Evaluate(f field.Parameters, p *Polynomial, point field.Element) Vector {

	n := p.N()
	d := p.Degree()

	w := make(Vector, n)
	for i := 0; i < n; i++ {
		acc := p.Coeffs[d][i]
		for j := d - 1; j >= 0; j-- {
			acc = f.Add(f.Mul(acc, point), p.Coeffs[j][i])
		}
		w[i] = acc
	}
	return w
}
