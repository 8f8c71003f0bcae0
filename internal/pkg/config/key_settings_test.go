//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      KeySettings
		expectedError bool
	}{
		{"defaults", DefaultKeySettings(), false},
		{"exponent of one", KeySettings{PublicExponent: 1, PrimeUpperBound: 20, MinModulus: 91, MaxModulus: 256}, true},
		{"upper bound too small", KeySettings{PublicExponent: 5, PrimeUpperBound: 2, MinModulus: 91, MaxModulus: 256}, true},
		{"modulus wider than a byte", KeySettings{PublicExponent: 5, PrimeUpperBound: 20, MinModulus: 91, MaxModulus: 323}, true},
		{"inverted range", KeySettings{PublicExponent: 5, PrimeUpperBound: 20, MinModulus: 200, MaxModulus: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
