//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairService is a mock implementation of KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Derive(ctx context.Context, userID string, p, q, publicExponent int64) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, userID, p, q, publicExponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) Generate(ctx context.Context, userID string, publicExponent int64) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, userID, publicExponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// MockProtocolService is a mock implementation of ProtocolService
type MockProtocolService struct {
	mock.Mock
}

func (m *MockProtocolService) Encrypt(ctx context.Context, keyPairID, plainText string) ([]byte, error) {
	args := m.Called(ctx, keyPairID, plainText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProtocolService) Decrypt(ctx context.Context, keyPairID string, cipherText []byte) (string, error) {
	args := m.Called(ctx, keyPairID, cipherText)
	return args.String(0), args.Error(1)
}

func (m *MockProtocolService) Sign(ctx context.Context, keyPairID, message string) ([]byte, error) {
	args := m.Called(ctx, keyPairID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProtocolService) Verify(ctx context.Context, keyPairID, message string, signature []byte) (bool, error) {
	args := m.Called(ctx, keyPairID, message, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockProtocolService) RoundTrip(ctx context.Context, keyPairID, message string) (*keys.RoundTripReport, error) {
	args := m.Called(ctx, keyPairID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.RoundTripReport), args.Error(1)
}
