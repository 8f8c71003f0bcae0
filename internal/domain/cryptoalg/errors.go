package cryptoalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInvertible is returned when the public exponent and the totient are not coprime.
	ErrNotInvertible = errors.New("public exponent has no inverse modulo totient")
	// ErrInvalidEncoding is returned when a byte sequence does not form valid UTF-8 text.
	ErrInvalidEncoding = errors.New("byte sequence is not valid UTF-8")
	// ErrSymbolOutOfRange is returned when a symbol does not fit the modulus or the byte width.
	ErrSymbolOutOfRange = errors.New("symbol out of range")
	// ErrModulusOverflow is returned when p*q does not fit the arithmetic domain.
	ErrModulusOverflow = errors.New("modulus overflows 64-bit arithmetic")
	// ErrNegativeExponent is returned when an unnormalized exponent reaches ModPow.
	ErrNegativeExponent = errors.New("exponent must be non-negative")
	// ErrZeroModulus is returned for a zero modulus.
	ErrZeroModulus = errors.New("modulus must be positive")
	// ErrNotPrime is returned when a key factor is not prime.
	ErrNotPrime = errors.New("value is not prime")
	// ErrEqualPrimes is returned when p == q.
	ErrEqualPrimes = errors.New("primes p and q must differ")
	// ErrInvalidUpperBound is returned when no prime can exist below the requested bound.
	ErrInvalidUpperBound = errors.New("upper bound must be at least 3")
	// ErrPrimeNotFound is returned when sampling gives up.
	ErrPrimeNotFound = errors.New("no prime found within attempt limit")
	// ErrKeyPairNotFound is returned when no key pair satisfying the constraints could be sampled.
	ErrKeyPairNotFound = errors.New("no key pair found within attempt limit")
)

// InvertibilityError describes a public exponent that cannot be inverted modulo the totient.
type InvertibilityError struct {
	PublicExponent Key
	Totient        int64
	GCD            int64
}

func (e *InvertibilityError) Error() string {
	return fmt.Sprintf("gcd(%d, %d) = %d: %v", e.PublicExponent, e.Totient, e.GCD, ErrNotInvertible)
}

// Unwrap allows errors.Is(err, ErrNotInvertible).
func (e *InvertibilityError) Unwrap() error {
	return ErrNotInvertible
}

// EncodingError describes a byte sequence that could not be turned back into text.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d: %v", e.Offset, ErrInvalidEncoding)
}

// Unwrap allows errors.Is(err, ErrInvalidEncoding).
func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
