// Package sampling provides a seedable source of cryptographically strong
// pseudo-random bytes for the samplers of this library.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Seed is the 256-bit seed of a [Source].
type Seed = [32]byte

// NewSeed returns a fresh seed sampled from crypto/rand.
func NewSeed() (seed Seed) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("crypto/rand: %w", err))
	}
	return
}

// Source is a stream of pseudo-random bytes expanded from a 256-bit seed
// with the BLAKE2b XOF. Two sources instantiated with the same seed produce
// identical streams, which makes protocol runs reproducible in tests.
// A Source is not safe for concurrent use; derive an independent source per
// goroutine with [Source.NewSource].
type Source struct {
	xof blake2b.XOF
}

// NewSource instantiates a new [Source] from a seed.
func NewSource(seed Seed) *Source {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	if err != nil {
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	return &Source{xof: xof}
}

// NewSeed derives a fresh seed from the receiver's stream.
func (s *Source) NewSeed() (seed Seed) {
	if _, err := io.ReadFull(s.xof, seed[:]); err != nil {
		panic(fmt.Errorf("blake2b XOF: %w", err))
	}
	return
}

// NewSource derives a new independent [Source] from the receiver's stream.
// The receiver and the returned source can be used concurrently.
func (s *Source) NewSource() *Source {
	return NewSource(s.NewSeed())
}

// Read fills p with pseudo-random bytes. It always returns len(p), nil.
func (s *Source) Read(p []byte) (n int, err error) {
	if n, err = io.ReadFull(s.xof, p); err != nil {
		panic(fmt.Errorf("blake2b XOF: %w", err))
	}
	return
}

// Uint64 returns a uniform uint64.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
		panic(fmt.Errorf("blake2b XOF: %w", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}
