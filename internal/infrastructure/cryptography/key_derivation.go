package cryptography

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// ExtendedGCD returns gcd(a, b) together with Bézout coefficients x and y such that
// a*x + b*y = gcd(a, b).
func ExtendedGCD(a, b int64) (gcd, x, y int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT
}

// DerivePrivateExponent returns x with publicExponent*x ≡ 1 (mod totient).
// The coefficient is returned as produced by the extended Euclidean algorithm, so it may be
// negative; callers must pass it through NormalizeExponent before using it as an exponent.
func DerivePrivateExponent(publicExponent cryptoalg.Key, totient int64) (cryptoalg.Key, error) {
	if publicExponent <= 0 || totient <= 0 {
		return 0, &cryptoalg.InvertibilityError{PublicExponent: publicExponent, Totient: totient}
	}

	gcd, x, _ := ExtendedGCD(int64(publicExponent), totient)
	if gcd != 1 {
		return 0, &cryptoalg.InvertibilityError{PublicExponent: publicExponent, Totient: totient, GCD: gcd}
	}
	return cryptoalg.Key(x), nil
}

// NormalizeExponent maps x into [0, totient).
func NormalizeExponent(x cryptoalg.Key, totient int64) (cryptoalg.Key, error) {
	if totient <= 0 {
		return 0, fmt.Errorf("totient %d: %w", totient, cryptoalg.ErrZeroModulus)
	}
	r := int64(x) % totient
	if r < 0 {
		r += totient
	}
	return cryptoalg.Key(r), nil
}

// Totient returns Euler's totient (p-1)(q-1) of a two-prime modulus.
func Totient(p, q int64) int64 {
	return (p - 1) * (q - 1)
}

// Modulus returns p*q, failing if the product leaves the signed 64-bit range used for totients.
func Modulus(p, q int64) (uint64, error) {
	if p <= 0 || q <= 0 {
		return 0, fmt.Errorf("p=%d, q=%d: %w", p, q, cryptoalg.ErrZeroModulus)
	}
	hi, lo := bits.Mul64(uint64(p), uint64(q))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("p=%d, q=%d: %w", p, q, cryptoalg.ErrModulusOverflow)
	}
	return lo, nil
}

// DeriveKeyPair derives an immutable key pair from two distinct primes and a public exponent.
// The private exponent is normalized into [0, φ).
func DeriveKeyPair(p, q int64, publicExponent cryptoalg.Key) (*cryptoalg.KeyPair, error) {
	if !cryptoalg.IsPrime(p) {
		return nil, fmt.Errorf("p=%d: %w", p, cryptoalg.ErrNotPrime)
	}
	if !cryptoalg.IsPrime(q) {
		return nil, fmt.Errorf("q=%d: %w", q, cryptoalg.ErrNotPrime)
	}
	if p == q {
		return nil, fmt.Errorf("p=q=%d: %w", p, cryptoalg.ErrEqualPrimes)
	}

	n, err := Modulus(p, q)
	if err != nil {
		return nil, err
	}
	phi := Totient(p, q)

	raw, err := DerivePrivateExponent(publicExponent, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	d, err := NormalizeExponent(raw, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize private exponent: %w", err)
	}

	return &cryptoalg.KeyPair{
		PublicExponent:  publicExponent,
		PrivateExponent: d,
		Modulus:         n,
	}, nil
}
