package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeySettings controls how key pairs are generated when the caller does not supply primes.
// The modulus range keeps byte-wise encryption lossless: MaxModulus may not exceed 256 and
// MinModulus should sit above the largest symbol callers intend to encrypt.
type KeySettings struct {
	PublicExponent  int64  `mapstructure:"public_exponent" validate:"required,gt=1"`
	PrimeUpperBound int64  `mapstructure:"prime_upper_bound" validate:"required,gte=3"`
	MinModulus      uint64 `mapstructure:"min_modulus" validate:"required,gte=4"`
	MaxModulus      uint64 `mapstructure:"max_modulus" validate:"required,gtefield=MinModulus,lte=256"`
}

// DefaultKeySettings returns settings that admit the demo key (13, 7, 5) and printable ASCII
// up to 'Z'.
func DefaultKeySettings() KeySettings {
	return KeySettings{
		PublicExponent:  5,
		PrimeUpperBound: 20,
		MinModulus:      91,
		MaxModulus:      256,
	}
}

// Validate checks that all fields in KeySettings are valid
func (s *KeySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeySettings: %w", err)
	}
	return nil
}
