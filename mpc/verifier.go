// Package mpc implements a single-round multiparty sub-protocol that
// checks a claimed multiplicative triple against a pre-verified helper
// triple without revealing any of the underlying secrets.
//
// Given additive sharings of a target triple (x, y, z) and of a helper
// triple (a, b, c) with a*b = c, together with a public uniform challenge
// e, the parties open the two masked values
//
//	alpha = e*x + a
//	beta  = y + b
//
// and then open
//
//	nu = e*z - c + alpha*b + beta*a - alpha*beta
//
// which algebraically equals e*(z - x*y) + (a*b - c). When both triples
// are valid nu is zero for every challenge, so acceptance is certain;
// when the helper triple is valid but z != x*y, nu vanishes only for
// e = 0, so a uniform challenge accepts a false claim with probability
// exactly 1/p. Validity of the helper triple is a precondition supplied
// by its generation protocol and is not re-verified here.
//
// The sharings of both triples are consumed read-only: a run derives
// fresh vectors and leaves its inputs untouched.
package mpc

import (
	"errors"
	"fmt"

	"github.com/Pro7ech/beaver/field"
	"github.com/Pro7ech/beaver/logger"
	"github.com/Pro7ech/beaver/share"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrProtocolAborted reports a run that could not reach a decision
// because a party failed to contribute to an opening. An aborted run is
// distinct from a [Reject]: it carries no cryptographic verdict and may
// be re-run with fresh randomness, never silently retried with the same
// shares.
var ErrProtocolAborted = errors.New("protocol aborted")

// Result is the verdict of a verification run.
type Result uint8

const (
	// Undecided is the result of an aborted run.
	Undecided Result = iota
	// Accept reports that the opened check value was zero.
	Accept
	// Reject reports a nonzero check value. It is the protocol's designed
	// negative outcome, not a software error.
	Reject
)

func (r Result) String() string {
	switch r {
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	default:
		return "Undecided"
	}
}

// row is one party's view of a verification run: its entry of each of the
// six input sharings, in the fixed order x, y, z, a, b, c.
type row struct {
	x, y, z field.Element
	a, b, c field.Element
}

// Verifier drives the triple-verification sub-protocol over an injected
// [Opener]. A Verifier holds no per-run state and can be reused across
// runs and goroutines.
type Verifier struct {
	f      field.Parameters
	opener Opener
	log    zerolog.Logger
}

// NewVerifier instantiates a [Verifier] over the given field, opening
// sharings through opener.
func NewVerifier(f field.Parameters, opener Opener) *Verifier {
	return &Verifier{
		f:      f,
		opener: opener,
		log:    logger.Logger().With().Str("protocol", "triple-check").Logger(),
	}
}

// Verify runs the sub-protocol once on the target triple, consuming the
// helper triple and the challenge, and returns the verdict.
//
// The challenge must be fresh for every run: it is sampled (or derived,
// see [TranscriptChallenge]) independently of the parties' inputs, and
// reusing one across runs of the same triple pair voids the 1/p
// soundness bound. A challenge of zero degenerates the check to the
// helper triple's own consistency and is decided by the same rule as any
// other value.
//
// The returned error is non-nil only for configuration mismatches and
// for aborted runs (wrapping [ErrProtocolAborted]); a cryptographic
// reject is the value [Reject] with a nil error.
func (v *Verifier) Verify(target, helper *Triple, challenge field.Element) (Result, error) {

	if target.N() != helper.N() {
		return Undecided, fmt.Errorf("cannot Verify: party count mismatch: target has %d, helper has %d", target.N(), helper.N())
	}

	f := v.f
	n := target.N()

	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{
			x: target.A[i], y: target.B[i], z: target.C[i],
			a: helper.A[i], b: helper.B[i], c: helper.C[i],
		}
	}

	v.log.Debug().Int("parties", n).Stringer("challenge", challenge).Msg("round 1: masking")

	// Round 1, local: alpha_i = e*x_i + a_i, beta_i = y_i + b_i.
	// One goroutine per party; the group Wait is the round barrier.
	alphaShares := make(share.Vector, n)
	betaShares := make(share.Vector, n)

	var g errgroup.Group
	for i := range rows {
		g.Go(func() error {
			alphaShares[i] = f.Add(f.Mul(challenge, rows[i].x), rows[i].a)
			betaShares[i] = f.Add(rows[i].y, rows[i].b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Undecided, fmt.Errorf("%w: round 1: %w", ErrProtocolAborted, err)
	}

	alpha, err := v.opener.Open(alphaShares)
	if err != nil {
		return Undecided, fmt.Errorf("%w: open alpha: %w", ErrProtocolAborted, err)
	}

	beta, err := v.opener.Open(betaShares)
	if err != nil {
		return Undecided, fmt.Errorf("%w: open beta: %w", ErrProtocolAborted, err)
	}

	v.log.Debug().Stringer("alpha", alpha).Stringer("beta", beta).Msg("round 2: check value")

	// Round 2, local: nu_i = e*z_i - c_i + alpha*b_i + beta*a_i.
	nuShares := make(share.Vector, n)

	var g2 errgroup.Group
	for i := range rows {
		g2.Go(func() error {
			nu := f.Sub(f.Mul(challenge, rows[i].z), rows[i].c)
			nu = f.Add(nu, f.Mul(alpha, rows[i].b))
			nuShares[i] = f.Add(nu, f.Mul(beta, rows[i].a))
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return Undecided, fmt.Errorf("%w: round 2: %w", ErrProtocolAborted, err)
	}

	// Party 1 alone subtracts the public product alpha*beta, preserving
	// the sum invariant for nu = e*z - c + alpha*b + beta*a - alpha*beta.
	nuShares = share.AddConstant(f, nuShares, f.Neg(f.Mul(alpha, beta)))

	nu, err := v.opener.Open(nuShares)
	if err != nil {
		return Undecided, fmt.Errorf("%w: open nu: %w", ErrProtocolAborted, err)
	}

	if !nu.IsZero() {
		v.log.Debug().Stringer("nu", nu).Stringer("result", Reject).Msg("decision")
		return Reject, nil
	}

	v.log.Debug().Stringer("result", Accept).Msg("decision")

	return Accept, nil
}
