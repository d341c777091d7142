package field

import (
	"math/big"
	"testing"

	"github.com/Pro7ech/beaver/utils/bignum"
	"github.com/Pro7ech/beaver/utils/sampling"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// testPrimes covers a tiny field, the largest pedagogical prime and a
// cryptographically sized prime (2^127 - 1).
var testPrimes = []*big.Int{
	bignum.NewInt(11),
	bignum.NewInt(7919),
	bignum.NewInt("170141183460469231731687303715884105727"),
}

func TestNewParameters(t *testing.T) {

	t.Run("Prime", func(t *testing.T) {
		for _, p := range testPrimes {
			f, err := NewParameters(p)
			require.NoError(t, err)
			require.Equal(t, p, f.Modulus())
		}
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := NewParameters(nil)
		require.Error(t, err)
	})

	t.Run("TooSmall", func(t *testing.T) {
		for _, p := range []int{-7, 0, 1} {
			_, err := NewParameters(bignum.NewInt(p))
			require.Error(t, err)
		}
	})

	t.Run("Composite", func(t *testing.T) {
		for _, p := range []int{4, 15, 7917} {
			_, err := NewParameters(bignum.NewInt(p))
			require.Error(t, err)
		}
	})

	t.Run("Equal", func(t *testing.T) {
		f11a, err := NewParameters(bignum.NewInt(11))
		require.NoError(t, err)
		f11b, err := NewParameters(bignum.NewInt(11))
		require.NoError(t, err)
		f13, err := NewParameters(bignum.NewInt(13))
		require.NoError(t, err)
		require.True(t, f11a.Equal(f11b))
		require.False(t, f11a.Equal(f13))
	})
}

func TestElement(t *testing.T) {

	f, err := NewParameters(bignum.NewInt(11))
	require.NoError(t, err)

	t.Run("Reduction", func(t *testing.T) {
		require.Equal(t, uint64(1), f.NewElement(12).Uint64())
		require.Equal(t, uint64(10), f.NewElement(-1).Uint64())
		require.Equal(t, uint64(0), f.NewElement(22).Uint64())
	})

	t.Run("Add", func(t *testing.T) {
		require.True(t, f.Add(f.NewElement(7), f.NewElement(8)).Equal(f.NewElement(4)))
	})

	t.Run("Sub", func(t *testing.T) {
		require.True(t, f.Sub(f.NewElement(3), f.NewElement(8)).Equal(f.NewElement(6)))
	})

	t.Run("Mul", func(t *testing.T) {
		require.True(t, f.Mul(f.NewElement(7), f.NewElement(8)).Equal(f.NewElement(1)))
	})

	t.Run("Neg", func(t *testing.T) {
		require.True(t, f.Neg(f.NewElement(3)).Equal(f.NewElement(8)))
		require.True(t, f.Neg(f.Zero()).IsZero())
	})

	t.Run("Inv", func(t *testing.T) {
		for x := 1; x < 11; x++ {
			inv, err := f.Inv(f.NewElement(x))
			require.NoError(t, err)
			require.True(t, f.Mul(f.NewElement(x), inv).Equal(f.One()))
		}
		_, err := f.Inv(f.Zero())
		require.Error(t, err)
	})

	t.Run("Exp", func(t *testing.T) {
		// Fermat: x^(p-1) = 1 for x != 0.
		for x := 1; x < 11; x++ {
			require.True(t, f.Exp(f.NewElement(x), bignum.NewInt(10)).Equal(f.One()))
		}
	})
}

func TestElementProperties(t *testing.T) {

	for _, p := range testPrimes {

		f, err := NewParameters(p)
		require.NoError(t, err)

		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 100

		properties := gopter.NewProperties(parameters)

		properties.Property("(a+b)-b == a", prop.ForAll(
			func(a, b uint64) bool {
				ea, eb := f.NewElement(a), f.NewElement(b)
				return f.Sub(f.Add(ea, eb), eb).Equal(ea)
			},
			gen.UInt64(), gen.UInt64(),
		))

		properties.Property("a+(-a) == 0", prop.ForAll(
			func(a uint64) bool {
				ea := f.NewElement(a)
				return f.Add(ea, f.Neg(ea)).IsZero()
			},
			gen.UInt64(),
		))

		properties.Property("a*b == b*a", prop.ForAll(
			func(a, b uint64) bool {
				ea, eb := f.NewElement(a), f.NewElement(b)
				return f.Mul(ea, eb).Equal(f.Mul(eb, ea))
			},
			gen.UInt64(), gen.UInt64(),
		))

		properties.Property("a*(b+c) == a*b+a*c", prop.ForAll(
			func(a, b, c uint64) bool {
				ea, eb, ec := f.NewElement(a), f.NewElement(b), f.NewElement(c)
				return f.Mul(ea, f.Add(eb, ec)).Equal(f.Add(f.Mul(ea, eb), f.Mul(ea, ec)))
			},
			gen.UInt64(), gen.UInt64(), gen.UInt64(),
		))

		properties.TestingRun(t, gopter.ConsoleReporter(false))
	}
}

func TestRandomElement(t *testing.T) {

	source := sampling.NewSource([32]byte{'a', 'b', 'c'})

	t.Run("InRange", func(t *testing.T) {
		for _, p := range testPrimes {
			f, err := NewParameters(p)
			require.NoError(t, err)
			for i := 0; i < 128; i++ {
				e := f.RandomElement(source)
				require.True(t, e.Big().Cmp(p) < 0)
			}
		}
	})

	t.Run("AllResiduesReached", func(t *testing.T) {
		f, err := NewParameters(bignum.NewInt(11))
		require.NoError(t, err)
		seen := make(map[uint64]int, 11)
		for i := 0; i < 1024; i++ {
			seen[f.RandomElement(source).Uint64()]++
		}
		require.Len(t, seen, 11)
	})

	t.Run("Deterministic", func(t *testing.T) {
		f, err := NewParameters(testPrimes[2])
		require.NoError(t, err)
		s1 := sampling.NewSource([32]byte{1})
		s2 := sampling.NewSource([32]byte{1})
		for i := 0; i < 16; i++ {
			require.True(t, f.RandomElement(s1).Equal(f.RandomElement(s2)))
		}
	})
}

func TestElementEncoding(t *testing.T) {

	for _, p := range testPrimes {

		f, err := NewParameters(p)
		require.NoError(t, err)

		source := sampling.NewSource([32]byte{'a', 'b', 'c'})

		e := f.RandomElement(source)
		data := f.Bytes(e)
		require.Len(t, data, f.ByteLen())

		dec, err := f.SetBytes(data)
		require.NoError(t, err)
		require.True(t, e.Equal(dec))
	}

	// Out of range encodings are rejected.
	f, err := NewParameters(bignum.NewInt(11))
	require.NoError(t, err)
	_, err = f.SetBytes([]byte{12})
	require.Error(t, err)
}
