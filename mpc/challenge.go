package mpc

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/beaver/field"
	"github.com/Pro7ech/beaver/share"
	"github.com/Pro7ech/beaver/utils/sampling"
	"golang.org/x/crypto/sha3"
)

// ChallengeSource supplies the public uniform challenge of a verification
// run. A challenge must be fresh per run and not derivable by the parties
// before the run starts: replaying one across runs of the same triple
// pair voids the soundness bound.
type ChallengeSource interface {
	Challenge(target, helper *Triple) (field.Element, error)
}

// UniformChallenge draws each challenge from a sampling source,
// independently of the triples. It models an external interactive
// verifier.
type UniformChallenge struct {
	f      field.Parameters
	source *sampling.Source
}

// NewUniformChallenge instantiates a [UniformChallenge] over the given
// field and source.
func NewUniformChallenge(f field.Parameters, source *sampling.Source) *UniformChallenge {
	return &UniformChallenge{f: f, source: source}
}

// Challenge returns a fresh uniform field element.
func (c *UniformChallenge) Challenge(_, _ *Triple) (field.Element, error) {
	return c.f.RandomElement(c.source), nil
}

// TranscriptChallenge derives each challenge by absorbing the two
// triples' sharings into SHAKE-256 under a domain-separation label,
// removing the interactive verifier (Fiat-Shamir). The same transcript
// always yields the same challenge, so a triple pair must not be
// verified twice through the same label.
type TranscriptChallenge struct {
	f     field.Parameters
	label string
}

// NewTranscriptChallenge instantiates a [TranscriptChallenge] with the
// given domain-separation label.
func NewTranscriptChallenge(f field.Parameters, label string) *TranscriptChallenge {
	return &TranscriptChallenge{f: f, label: label}
}

// Challenge hashes the transcript down to a field element.
func (c *TranscriptChallenge) Challenge(target, helper *Triple) (field.Element, error) {

	h := sha3.NewShake256()

	write := func(data []byte) {
		if _, err := h.Write(data); err != nil {
			panic(fmt.Errorf("shake256: write: %w", err))
		}
	}

	write([]byte(c.label))
	write(c.f.Modulus().Bytes())
	for _, t := range []*Triple{target, helper} {
		write(share.Bytes(c.f, t.A))
		write(share.Bytes(c.f, t.B))
		write(share.Bytes(c.f, t.C))
	}

	// Squeeze 16 bytes beyond the modulus width so that the bias of the
	// final reduction is below 2^-128.
	buf := make([]byte, c.f.ByteLen()+16)
	if _, err := h.Read(buf); err != nil {
		return field.Element{}, fmt.Errorf("shake256: read: %w", err)
	}

	e := new(big.Int).SetBytes(buf)

	return c.f.NewElement(e), nil
}
