package cryptography

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"golang.org/x/crypto/blake2b"
)

// Transform is one direction of a round trip.
type Transform[T any] func(T) (T, error)

// RoundTrip applies forward, then inverse, and compares the result with the input.
// A transform error aborts the round trip; a mismatch is reported through Success.
func RoundTrip[T any](input T, forward, inverse Transform[T], equal func(a, b T) bool) (*cryptoalg.RoundTripResult[T], error) {
	transformed, err := forward(input)
	if err != nil {
		return nil, fmt.Errorf("forward transform failed: %w", err)
	}

	recovered, err := inverse(transformed)
	if err != nil {
		return nil, fmt.Errorf("inverse transform failed: %w", err)
	}

	return &cryptoalg.RoundTripResult[T]{
		Input:       input,
		Transformed: transformed,
		Recovered:   recovered,
		Success:     equal(input, recovered),
	}, nil
}

// ExponentTransform returns a byte-wise transform under key.
func ExponentTransform(key cryptoalg.ExponentKey) Transform[[]byte] {
	return func(s []byte) ([]byte, error) {
		return TransformText(s, key.Exponent, key.Modulus)
	}
}

// EncryptionRoundTrip encrypts plainText with the public exponent, decrypts it with the private
// exponent and checks that the recovered bytes decode to the original text.
func EncryptionRoundTrip(plainText string, keyPair *cryptoalg.KeyPair) (*cryptoalg.RoundTripResult[[]byte], error) {
	decrypt := ExponentTransform(keyPair.PrivateKey())
	inverse := func(c []byte) ([]byte, error) {
		recovered, err := decrypt(c)
		if err != nil {
			return nil, err
		}
		if _, err := DecodeText(recovered); err != nil {
			return nil, err
		}
		return recovered, nil
	}

	return RoundTrip(EncodeText(plainText), ExponentTransform(keyPair.PublicKey()), inverse, bytes.Equal)
}

// SignatureRoundTrip signs the decimal hash of message with the private exponent, recovers it
// with the public exponent and checks that it reads back as the same hash.
func SignatureRoundTrip(message string, keyPair *cryptoalg.KeyPair) (*cryptoalg.RoundTripResult[[]byte], error) {
	hash := MessageHash(message)
	sameHash := func(_, recovered []byte) bool {
		got, err := ParseHashDigits(recovered)
		return err == nil && got == hash
	}

	return RoundTrip(HashDigits(hash), ExponentTransform(keyPair.PrivateKey()), ExponentTransform(keyPair.PublicKey()), sameHash)
}

// MessageHash reduces a message to a 64-bit value: the first eight bytes of its BLAKE2b-256
// digest, big-endian. Signing the hash keeps the signed symbols small.
func MessageHash(message string) uint64 {
	sum := blake2b.Sum256([]byte(message))
	return binary.BigEndian.Uint64(sum[:8])
}

// HashDigits renders a hash as its decimal digits.
func HashDigits(hash uint64) []byte {
	return []byte(strconv.FormatUint(hash, 10))
}

// ParseHashDigits reads back a hash rendered by HashDigits.
func ParseHashDigits(b []byte) (uint64, error) {
	return strconv.ParseUint(string(b), 10, 64)
}
