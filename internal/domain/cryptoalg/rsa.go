package cryptoalg

// TextbookRSAProcessor handles textbook RSA operations over small integer moduli.
// The scheme has no padding and tiny keys; it exists to show the arithmetic, not to protect data.
type TextbookRSAProcessor interface {
	// DeriveKeyPair derives the private exponent for (p, q, publicExponent).
	// Returns an error wrapping ErrNotInvertible, ErrNotPrime or ErrEqualPrimes on invalid input.
	DeriveKeyPair(p, q int64, publicExponent Key) (*KeyPair, error)

	// GenerateKeyPair samples two distinct primes below upperBound whose product lies in
	// [minModulus, maxModulus] and derives a key pair for publicExponent.
	GenerateKeyPair(upperBound int64, publicExponent Key, minModulus, maxModulus uint64) (*KeyPair, int64, int64, error)

	// Encrypt transforms plaintext symbol by symbol with the public exponent.
	Encrypt(plainText []byte, publicKey ExponentKey) ([]byte, error)

	// Decrypt transforms ciphertext with the private exponent and decodes it as text.
	// Returns an error wrapping ErrInvalidEncoding if the result is not valid UTF-8.
	Decrypt(cipherText []byte, privateKey ExponentKey) (string, error)

	// Sign hashes the message and transforms the decimal hash with the private exponent.
	Sign(message string, privateKey ExponentKey) ([]byte, error)

	// Verify recovers the hash from the signature with the public exponent and compares it
	// with the hash of the message.
	Verify(message string, signature []byte, publicKey ExponentKey) (bool, error)

	// EncryptionRoundTrip encrypts and decrypts plaintext and reports whether it survived.
	EncryptionRoundTrip(plainText string, keyPair *KeyPair) (*RoundTripResult[[]byte], error)

	// SignatureRoundTrip signs and recovers the hash of message and reports whether it matches.
	SignatureRoundTrip(message string, keyPair *KeyPair) (*RoundTripResult[[]byte], error)
}

// PrimeGenerator produces primes for key generation.
type PrimeGenerator interface {
	// GeneratePrime returns a prime in [2, upperBound).
	GeneratePrime(upperBound int64) (int64, error)
}
