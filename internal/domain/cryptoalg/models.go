package cryptoalg

import "fmt"

// Key is an exponent. The same transform serves both roles, so whether a Key encrypts/verifies
// or decrypts/signs depends only on which exponent the caller supplies.
type Key int64

// ExponentKey pairs an exponent with the modulus it operates under.
type ExponentKey struct {
	Exponent Key
	Modulus  uint64
}

// KeyPair is the immutable result of deriving keys from (p, q, publicExponent).
// PublicExponent * PrivateExponent ≡ 1 (mod φ(Modulus)).
type KeyPair struct {
	PublicExponent  Key
	PrivateExponent Key
	Modulus         uint64
}

// PublicKey returns the encrypt/verify half of the pair.
func (kp KeyPair) PublicKey() ExponentKey {
	return ExponentKey{Exponent: kp.PublicExponent, Modulus: kp.Modulus}
}

// PrivateKey returns the decrypt/sign half of the pair.
func (kp KeyPair) PrivateKey() ExponentKey {
	return ExponentKey{Exponent: kp.PrivateExponent, Modulus: kp.Modulus}
}

func (kp KeyPair) String() string {
	return fmt.Sprintf("KeyPair{e=%d, d=%d, N=%d}", kp.PublicExponent, kp.PrivateExponent, kp.Modulus)
}

// RoundTripResult reports the outcome of applying a transform and its inverse.
type RoundTripResult[T any] struct {
	Input       T
	Transformed T
	Recovered   T
	Success     bool
}
