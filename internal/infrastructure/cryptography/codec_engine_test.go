//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformSymbol(t *testing.T) {
	t.Run("DemoSymbol", func(t *testing.T) {
		c, err := TransformSymbol(3, 5, 91)
		require.NoError(t, err)
		assert.Equal(t, byte(61), c)

		m, err := TransformSymbol(c, 29, 91)
		require.NoError(t, err)
		assert.Equal(t, byte(3), m)
	})

	t.Run("AllSymbolsBelowModulusRoundTrip", func(t *testing.T) {
		// p=17, q=13: N=221, φ=192, e=5, d=77
		for c := 0; c < 221; c++ {
			enc, err := TransformSymbol(byte(c), 5, 221)
			require.NoError(t, err)
			dec, err := TransformSymbol(enc, 77, 221)
			require.NoError(t, err)
			require.Equal(t, byte(c), dec)
		}
	})

	t.Run("SymbolAtOrAboveModulus", func(t *testing.T) {
		_, err := TransformSymbol(91, 5, 91)
		assert.ErrorIs(t, err, cryptoalg.ErrSymbolOutOfRange)
	})

	t.Run("ResultDoesNotFitByte", func(t *testing.T) {
		// 9^5 mod 323 = 263
		_, err := TransformSymbol(9, 5, 323)
		assert.ErrorIs(t, err, cryptoalg.ErrSymbolOutOfRange)
	})

	t.Run("ZeroModulus", func(t *testing.T) {
		_, err := TransformSymbol(3, 5, 0)
		assert.ErrorIs(t, err, cryptoalg.ErrZeroModulus)
	})

	t.Run("NegativeKey", func(t *testing.T) {
		_, err := TransformSymbol(3, -13, 91)
		assert.ErrorIs(t, err, cryptoalg.ErrNegativeExponent)
	})
}

func TestTransformText(t *testing.T) {
	plain := []byte("HELLO 42")

	cipher, err := TransformText(plain, 5, 91)
	require.NoError(t, err)
	assert.Len(t, cipher, len(plain))
	assert.NotEqual(t, plain, cipher)

	recovered, err := TransformText(cipher, 29, 91)
	require.NoError(t, err)
	assert.Equal(t, plain, recovered)

	empty, err := TransformText(nil, 5, 91)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = TransformText([]byte("HELLo"), 5, 91)
	assert.ErrorIs(t, err, cryptoalg.ErrSymbolOutOfRange)
	assert.Contains(t, err.Error(), "offset 4")
}

func TestDecodeText(t *testing.T) {
	text, err := DecodeText(EncodeText("grüße"))
	require.NoError(t, err)
	assert.Equal(t, "grüße", text)

	_, err = DecodeText([]byte{'a', 'b', 0xff, 'c'})
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidEncoding)

	var encErr *cryptoalg.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 2, encErr.Offset)
}
