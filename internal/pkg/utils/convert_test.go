//go:build unit
// +build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToInt(t *testing.T) {
	n, err := ConvertToInt("limit", "42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ConvertToInt("offset", "-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	for _, bad := range []string{"ten", "", "1.5"} {
		_, err := ConvertToInt("limit", bad)
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "invalid limit")
	}
}

func TestConvertToInt64(t *testing.T) {
	n, err := ConvertToInt64("publicExponent", "9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), n)

	_, err = ConvertToInt64("publicExponent", "9223372036854775808")
	assert.Error(t, err)
}

func TestConvertToUint64(t *testing.T) {
	n, err := ConvertToUint64("modulus", "91")
	require.NoError(t, err)
	assert.Equal(t, uint64(91), n)

	n, err = ConvertToUint64("modulus", "9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, uint64(9223372036854775807), n)

	for _, bad := range []string{"-1", "9223372036854775808", "ninety-one"} {
		_, err := ConvertToUint64("modulus", bad)
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "invalid modulus")
	}
}
