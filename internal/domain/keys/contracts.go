package keys

import (
	"context"
)

// KeyPairService defines methods for deriving, generating and managing stored key pairs.
type KeyPairService interface {
	// Derive derives a key pair from caller-supplied primes and public exponent and stores it.
	Derive(ctx context.Context, userID string, p, q, publicExponent int64) (*KeyPairMeta, error)

	// Generate samples primes within the configured bounds, derives a key pair and stores it.
	// A zero publicExponent selects the configured default.
	Generate(ctx context.Context, userID string, publicExponent int64) (*KeyPairMeta, error)

	// List retrieves stored key pairs considering a query filter when set.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves a stored key pair by its unique ID.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)

	// DeleteByID deletes a stored key pair by ID.
	DeleteByID(ctx context.Context, keyPairID string) error
}

// ProtocolService defines the encrypt/decrypt/sign/verify operations on a stored key pair.
type ProtocolService interface {
	// Encrypt encrypts plaintext with the public exponent of the key pair.
	Encrypt(ctx context.Context, keyPairID, plainText string) ([]byte, error)

	// Decrypt decrypts ciphertext with the private exponent and decodes the result as text.
	Decrypt(ctx context.Context, keyPairID string, cipherText []byte) (string, error)

	// Sign signs the hash of message with the private exponent.
	Sign(ctx context.Context, keyPairID, message string) ([]byte, error)

	// Verify checks a signature against the hash of message with the public exponent.
	Verify(ctx context.Context, keyPairID, message string, signature []byte) (bool, error)

	// RoundTrip runs the encryption and signature round trips for message.
	RoundTrip(ctx context.Context, keyPairID, message string) (*RoundTripReport, error)
}

// KeyPairRepository defines the interface for key-pair persistence
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}
