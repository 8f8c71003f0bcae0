//go:build unit
// +build unit

package cryptography

import (
	"math"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteForceModPow(base, exponent, modulus uint64) uint64 {
	result := uint64(1) % modulus
	for i := uint64(0); i < exponent; i++ {
		result = result * (base % modulus) % modulus
	}
	return result
}

func TestMulMod(t *testing.T) {
	tests := []struct {
		name     string
		a, b, m  uint64
		expected uint64
	}{
		{"small", 7, 8, 5, 1},
		{"zero operand", 0, 12345, 97, 0},
		{"max operands", math.MaxUint64, math.MaxUint64, math.MaxUint64 - 58, 3364},
		{"product exceeds 64 bits", 1 << 40, 1 << 40, 1000000007, 496641140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MulMod(tt.a, tt.b, tt.m))
		})
	}
}

func TestModPow(t *testing.T) {
	t.Run("ZeroExponentIsOne", func(t *testing.T) {
		for _, m := range []uint64{2, 91, 221, math.MaxUint64} {
			got, err := ModPow(123456789, 0, m)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), got, "modulus %d", m)
		}
	})

	t.Run("ModulusOne", func(t *testing.T) {
		got, err := ModPow(5, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("KnownValue", func(t *testing.T) {
		got, err := ModPow(4, 13, 91)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), got)
	})

	t.Run("MatchesBruteForce", func(t *testing.T) {
		for _, m := range []uint64{2, 7, 91, 221, 323} {
			for base := uint64(0); base < 40; base++ {
				for exp := uint64(0); exp < 40; exp++ {
					got, err := ModPow(base, cryptoalg.Key(exp), m)
					require.NoError(t, err)
					require.Equal(t, bruteForceModPow(base, exp, m), got, "%d^%d mod %d", base, exp, m)
				}
			}
		}
	})

	t.Run("LargeModulusDoesNotOverflow", func(t *testing.T) {
		// Fermat: a^(p-1) ≡ 1 (mod p) for the prime 2^61-1.
		const p = uint64(1)<<61 - 1
		got, err := ModPow(3, cryptoalg.Key(p-1), p)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got)
	})

	t.Run("NegativeExponentRejected", func(t *testing.T) {
		_, err := ModPow(3, -13, 91)
		assert.ErrorIs(t, err, cryptoalg.ErrNegativeExponent)
	})

	t.Run("ZeroModulusRejected", func(t *testing.T) {
		_, err := ModPow(3, 5, 0)
		assert.ErrorIs(t, err, cryptoalg.ErrZeroModulus)
	})
}
