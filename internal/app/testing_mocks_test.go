package app

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

type mockKeyPairRepository struct {
	mock.Mock
}

func (m *mockKeyPairRepository) Create(ctx context.Context, keyPair *keys.KeyPairMeta) error {
	args := m.Called(ctx, keyPair)
	return args.Error(0)
}

func (m *mockKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*keys.KeyPairMeta), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if v := args.Get(0); v != nil {
		return v.(*keys.KeyPairMeta), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// fixedPrimeGenerator hands out primes from a fixed cycle.
type fixedPrimeGenerator struct {
	primes []int64
	next   int
}

func (g *fixedPrimeGenerator) GeneratePrime(int64) (int64, error) {
	p := g.primes[g.next%len(g.primes)]
	g.next++
	return p, nil
}
