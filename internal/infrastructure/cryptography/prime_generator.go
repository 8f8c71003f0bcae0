package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// primeGenerator samples uniformly and retries until it hits a prime.
type primeGenerator struct {
	random io.Reader
}

// NewPrimeGenerator creates a prime generator reading randomness from random.
// A nil reader selects crypto/rand.
func NewPrimeGenerator(random io.Reader) cryptoalg.PrimeGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &primeGenerator{random: random}
}

// GeneratePrime returns a prime in [2, upperBound).
func (g *primeGenerator) GeneratePrime(upperBound int64) (int64, error) {
	if upperBound < 3 {
		return 0, fmt.Errorf("upper bound %d: %w", upperBound, cryptoalg.ErrInvalidUpperBound)
	}

	span := big.NewInt(upperBound - 2)
	for attempt := 0; attempt < cryptoalg.MaxPrimeAttempts; attempt++ {
		n, err := rand.Int(g.random, span)
		if err != nil {
			return 0, fmt.Errorf("failed to sample candidate: %w", err)
		}
		candidate := n.Int64() + 2
		if cryptoalg.IsPrime(candidate) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("upper bound %d: %w", upperBound, cryptoalg.ErrPrimeNotFound)
}

// GenerateKeyPair samples two distinct primes below upperBound until their product lies in
// [minModulus, maxModulus] and publicExponent is invertible modulo the totient.
// It returns the key pair and the primes it was derived from.
func GenerateKeyPair(gen cryptoalg.PrimeGenerator, upperBound int64, publicExponent cryptoalg.Key, minModulus, maxModulus uint64) (*cryptoalg.KeyPair, int64, int64, error) {
	if minModulus > maxModulus {
		return nil, 0, 0, fmt.Errorf("modulus range [%d, %d] is empty: %w", minModulus, maxModulus, cryptoalg.ErrKeyPairNotFound)
	}

	for attempt := 0; attempt < cryptoalg.MaxKeyPairAttempts; attempt++ {
		p, err := gen.GeneratePrime(upperBound)
		if err != nil {
			return nil, 0, 0, err
		}
		q, err := gen.GeneratePrime(upperBound)
		if err != nil {
			return nil, 0, 0, err
		}
		if p == q {
			continue
		}

		n, err := Modulus(p, q)
		if err != nil {
			return nil, 0, 0, err
		}
		if n < minModulus || n > maxModulus {
			continue
		}

		keyPair, err := DeriveKeyPair(p, q, publicExponent)
		if errors.Is(err, cryptoalg.ErrNotInvertible) {
			continue
		}
		if err != nil {
			return nil, 0, 0, err
		}
		return keyPair, p, q, nil
	}
	return nil, 0, 0, cryptoalg.ErrKeyPairNotFound
}
