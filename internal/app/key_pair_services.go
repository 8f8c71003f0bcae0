package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// keyPairService implements the KeyPairService interface
type keyPairService struct {
	processor cryptoalg.TextbookRSAProcessor
	repo      keys.KeyPairRepository
	settings  config.KeySettings
	logger    logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(
	processor cryptoalg.TextbookRSAProcessor,
	repo keys.KeyPairRepository,
	settings config.KeySettings,
	logger logger.Logger,
) (keys.KeyPairService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &keyPairService{
		processor: processor,
		repo:      repo,
		settings:  settings,
		logger:    logger,
	}, nil
}

// Derive derives a key pair from p, q and publicExponent and stores it
func (s *keyPairService) Derive(ctx context.Context, userID string, p, q, publicExponent int64) (*keys.KeyPairMeta, error) {
	keyPair, err := s.processor.DeriveKeyPair(p, q, cryptoalg.Key(publicExponent))
	if err != nil {
		return nil, err
	}
	return s.store(ctx, userID, p, q, keyPair)
}

// Generate samples primes below the configured bound and stores the first admissible key pair
func (s *keyPairService) Generate(ctx context.Context, userID string, publicExponent int64) (*keys.KeyPairMeta, error) {
	if publicExponent == 0 {
		publicExponent = s.settings.PublicExponent
	}

	keyPair, p, q, err := s.processor.GenerateKeyPair(
		s.settings.PrimeUpperBound,
		cryptoalg.Key(publicExponent),
		s.settings.MinModulus,
		s.settings.MaxModulus,
	)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, userID, p, q, keyPair)
}

func (s *keyPairService) store(ctx context.Context, userID string, p, q int64, keyPair *cryptoalg.KeyPair) (*keys.KeyPairMeta, error) {
	meta := keys.NewKeyPairMeta(userID, p, q, keyPair)
	if err := s.repo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Stored key pair %s with modulus %d", meta.ID, meta.Modulus))
	return meta, nil
}

// List retrieves stored key pairs matching query
func (s *keyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	keyPairs, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key pairs: %w", err)
	}
	return keyPairs, nil
}

// GetByID retrieves a stored key pair by ID
func (s *keyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	keyPair, err := s.repo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return keyPair, nil
}

// DeleteByID deletes a stored key pair by ID
func (s *keyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := s.repo.DeleteByID(ctx, keyPairID); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Deleted key pair %s", keyPairID))
	return nil
}
