package cryptography

import (
	"fmt"
	"math/bits"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// MulMod returns a*b mod m without overflowing, using a 128-bit intermediate product.
// m must not be zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// ModPow computes base^exponent mod modulus with square-and-multiply, reducing after every
// multiplication so no intermediate value exceeds modulus^2.
func ModPow(base uint64, exponent cryptoalg.Key, modulus uint64) (uint64, error) {
	if modulus == 0 {
		return 0, cryptoalg.ErrZeroModulus
	}
	if exponent < 0 {
		return 0, fmt.Errorf("exponent %d: %w", exponent, cryptoalg.ErrNegativeExponent)
	}
	if modulus == 1 {
		return 0, nil
	}

	result := uint64(1)
	b := base % modulus
	for e := uint64(exponent); e > 0; e >>= 1 {
		if e&1 == 1 {
			result = MulMod(result, b, modulus)
		}
		b = MulMod(b, b, modulus)
	}
	return result, nil
}
