//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type primes struct {
	P int64  `validate:"prime"`
	Q uint32 `validate:"prime"`
}

func TestPrimeValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		value   primes
		wantErr bool
	}{
		{"demo primes", primes{P: 13, Q: 7}, false},
		{"two is prime", primes{P: 2, Q: 3}, false},
		{"composite p", primes{P: 91, Q: 7}, true},
		{"one is not prime", primes{P: 13, Q: 1}, true},
		{"negative", primes{P: -7, Q: 7}, true},
		{"even composite", primes{P: 13, Q: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type widePrime struct {
	N uint64 `validate:"prime"`
}

func TestPrimeValidation_UintAboveMaxInt64(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(widePrime{N: 2147483647}))
	// 2^64 - 59 is the largest prime that fits in a uint64.
	assert.Error(t, v.Struct(widePrime{N: 1<<63 + 7}))
	assert.Error(t, v.Struct(widePrime{N: 18446744073709551557}))
}

type notANumber struct {
	N string `validate:"prime"`
}

func TestPrimeValidation_NonIntegerField(t *testing.T) {
	assert.Error(t, New().Struct(notANumber{N: "13"}))
}
