package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	primes cryptoalg.PrimeGenerator
	logger logger.Logger
}

// NewTextbookRSAProcessor creates and returns a new instance of textbookRSAProcessor
func NewTextbookRSAProcessor(primes cryptoalg.PrimeGenerator, logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	if primes == nil {
		primes = NewPrimeGenerator(nil)
	}
	return &textbookRSAProcessor{
		primes: primes,
		logger: logger,
	}, nil
}

// DeriveKeyPair derives the private exponent for (p, q, publicExponent).
func (r *textbookRSAProcessor) DeriveKeyPair(p, q int64, publicExponent cryptoalg.Key) (*cryptoalg.KeyPair, error) {
	keyPair, err := DeriveKeyPair(p, q, publicExponent)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key pair: %w", err)
	}

	r.logger.Info("Derived key pair with modulus ", keyPair.Modulus)
	return keyPair, nil
}

// GenerateKeyPair samples primes and derives a key pair whose modulus lies in range.
func (r *textbookRSAProcessor) GenerateKeyPair(upperBound int64, publicExponent cryptoalg.Key, minModulus, maxModulus uint64) (*cryptoalg.KeyPair, int64, int64, error) {
	keyPair, p, q, err := GenerateKeyPair(r.primes, upperBound, publicExponent, minModulus, maxModulus)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to generate key pair: %w", err)
	}

	r.logger.Info(fmt.Sprintf("Generated key pair from primes p=%d q=%d", p, q))
	return keyPair, p, q, nil
}

// Encrypt transforms plaintext symbol by symbol with the public exponent.
func (r *textbookRSAProcessor) Encrypt(plainText []byte, publicKey cryptoalg.ExponentKey) ([]byte, error) {
	cipherText, err := TransformText(plainText, publicKey.Exponent, publicKey.Modulus)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("Textbook RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt transforms ciphertext with the private exponent and decodes it as text.
func (r *textbookRSAProcessor) Decrypt(cipherText []byte, privateKey cryptoalg.ExponentKey) (string, error) {
	recovered, err := TransformText(cipherText, privateKey.Exponent, privateKey.Modulus)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt data: %w", err)
	}

	plainText, err := DecodeText(recovered)
	if err != nil {
		return "", fmt.Errorf("failed to decode decrypted data: %w", err)
	}

	r.logger.Info("Textbook RSA decryption succeeded")
	return plainText, nil
}

// Sign transforms the decimal message hash with the private exponent.
func (r *textbookRSAProcessor) Sign(message string, privateKey cryptoalg.ExponentKey) ([]byte, error) {
	signature, err := TransformText(HashDigits(MessageHash(message)), privateKey.Exponent, privateKey.Modulus)
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("Textbook RSA signing succeeded")
	return signature, nil
}

// Verify recovers the hash from signature and compares it with the hash of message.
// Returns false without an error when the signature is well-formed but does not match.
func (r *textbookRSAProcessor) Verify(message string, signature []byte, publicKey cryptoalg.ExponentKey) (bool, error) {
	recovered, err := TransformText(signature, publicKey.Exponent, publicKey.Modulus)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	hash, err := ParseHashDigits(recovered)
	if err != nil || hash != MessageHash(message) {
		r.logger.Warn("Textbook RSA signature mismatch")
		return false, nil
	}

	r.logger.Info("Textbook RSA signature verified successfully")
	return true, nil
}

// EncryptionRoundTrip encrypts and decrypts plainText with keyPair.
func (r *textbookRSAProcessor) EncryptionRoundTrip(plainText string, keyPair *cryptoalg.KeyPair) (*cryptoalg.RoundTripResult[[]byte], error) {
	if keyPair == nil {
		return nil, fmt.Errorf("key pair cannot be nil")
	}

	result, err := EncryptionRoundTrip(plainText, keyPair)
	if err != nil {
		return nil, fmt.Errorf("encryption round trip failed: %w", err)
	}

	r.logger.Info("Encryption round trip success=", result.Success)
	return result, nil
}

// SignatureRoundTrip signs and recovers the hash of message with keyPair.
func (r *textbookRSAProcessor) SignatureRoundTrip(message string, keyPair *cryptoalg.KeyPair) (*cryptoalg.RoundTripResult[[]byte], error) {
	if keyPair == nil {
		return nil, fmt.Errorf("key pair cannot be nil")
	}

	result, err := SignatureRoundTrip(message, keyPair)
	if err != nil {
		return nil, fmt.Errorf("signature round trip failed: %w", err)
	}

	r.logger.Info("Signature round trip success=", result.Success)
	return result, nil
}
