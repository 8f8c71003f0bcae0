package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// protocolService implements the ProtocolService interface on top of stored key pairs
type protocolService struct {
	processor cryptoalg.TextbookRSAProcessor
	repo      keys.KeyPairRepository
	logger    logger.Logger
}

// NewProtocolService creates a new protocolService instance
func NewProtocolService(processor cryptoalg.TextbookRSAProcessor, repo keys.KeyPairRepository, logger logger.Logger) (keys.ProtocolService, error) {
	return &protocolService{
		processor: processor,
		repo:      repo,
		logger:    logger,
	}, nil
}

func (s *protocolService) keyPair(ctx context.Context, keyPairID string) (*cryptoalg.KeyPair, error) {
	meta, err := s.repo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return meta.KeyPair(), nil
}

// Encrypt encrypts plainText with the public key of the stored key pair
func (s *protocolService) Encrypt(ctx context.Context, keyPairID, plainText string) ([]byte, error) {
	keyPair, err := s.keyPair(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return s.processor.Encrypt([]byte(plainText), keyPair.PublicKey())
}

// Decrypt decrypts cipherText with the private key of the stored key pair
func (s *protocolService) Decrypt(ctx context.Context, keyPairID string, cipherText []byte) (string, error) {
	keyPair, err := s.keyPair(ctx, keyPairID)
	if err != nil {
		return "", err
	}
	return s.processor.Decrypt(cipherText, keyPair.PrivateKey())
}

// Sign signs message with the private key of the stored key pair
func (s *protocolService) Sign(ctx context.Context, keyPairID, message string) ([]byte, error) {
	keyPair, err := s.keyPair(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return s.processor.Sign(message, keyPair.PrivateKey())
}

// Verify verifies signature over message with the public key of the stored key pair
func (s *protocolService) Verify(ctx context.Context, keyPairID, message string, signature []byte) (bool, error) {
	keyPair, err := s.keyPair(ctx, keyPairID)
	if err != nil {
		return false, err
	}
	return s.processor.Verify(message, signature, keyPair.PublicKey())
}

// RoundTrip runs both round trips for message and reports whether each recovered its input
func (s *protocolService) RoundTrip(ctx context.Context, keyPairID, message string) (*keys.RoundTripReport, error) {
	keyPair, err := s.keyPair(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	encryption, err := s.processor.EncryptionRoundTrip(message, keyPair)
	if err != nil {
		return nil, fmt.Errorf("encryption round trip: %w", err)
	}

	signature, err := s.processor.SignatureRoundTrip(message, keyPair)
	if err != nil {
		return nil, fmt.Errorf("signature round trip: %w", err)
	}

	report := &keys.RoundTripReport{
		KeyPairID:           keyPairID,
		Message:             message,
		CipherText:          encryption.Transformed,
		Signature:           signature.Transformed,
		EncryptionSucceeded: encryption.Success,
		SignatureSucceeded:  signature.Success,
	}
	s.logger.Info(fmt.Sprintf("Round trip on key pair %s: encryption=%t signature=%t",
		keyPairID, report.EncryptionSucceeded, report.SignatureSucceeded))
	return report, nil
}
