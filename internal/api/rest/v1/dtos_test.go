//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyPairRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   DeriveKeyPairRequest
		shouldErr bool
	}{
		{"demo key", DeriveKeyPairRequest{P: 13, Q: 7, PublicExponent: 5}, false},
		{"large primes", DeriveKeyPairRequest{P: 1000003, Q: 999983, PublicExponent: 65537}, false},
		{"composite p", DeriveKeyPairRequest{P: 15, Q: 7, PublicExponent: 5}, true},
		{"equal primes", DeriveKeyPairRequest{P: 7, Q: 7, PublicExponent: 5}, true},
		{"exponent one", DeriveKeyPairRequest{P: 13, Q: 7, PublicExponent: 1}, true},
		{"empty", DeriveKeyPairRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestGenerateKeyPairRequest_Validate(t *testing.T) {
	require.NoError(t, (&GenerateKeyPairRequest{}).Validate())
	require.NoError(t, (&GenerateKeyPairRequest{PublicExponent: 7}).Validate())
	require.Error(t, (&GenerateKeyPairRequest{PublicExponent: 1}).Validate())
}

func TestSymbolRequests_Validate(t *testing.T) {
	require.NoError(t, (&DecryptRequest{CipherText: []int{0, 61, 255}}).Validate())
	require.Error(t, (&DecryptRequest{}).Validate())
	require.Error(t, (&DecryptRequest{CipherText: []int{-1}}).Validate())
	require.Error(t, (&DecryptRequest{CipherText: []int{256}}).Validate())

	require.NoError(t, (&VerifyRequest{Message: "HELLO", Signature: []int{1}}).Validate())
	require.Error(t, (&VerifyRequest{Message: "", Signature: []int{1}}).Validate())
	require.Error(t, (&VerifyRequest{Message: "HELLO"}).Validate())
}

func TestSymbolConversion(t *testing.T) {
	b := []byte{0, 61, 255}
	assert.Equal(t, []int{0, 61, 255}, toSymbols(b))
	assert.Equal(t, b, fromSymbols(toSymbols(b)))
	assert.Empty(t, toSymbols(nil))
}
