//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against the server named by TEXTBOOK_RSA_TEST_POSTGRES_DSN.
func TestKeyPairPsqlRepository_CreateGetDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	keyPair := CreateTestKeyPair(t, uuid.NewString())
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	require.NoError(t, err)
	assert.Equal(t, keyPair.KeyPair(), fetched.KeyPair())

	listed, err := ctx.KeyPairRepo.List(context.Background(), keys.NewKeyPairQuery())
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID))
	_, err = ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	assert.ErrorIs(t, err, keys.ErrNotFound)
}

func TestSetupTestDB_SkipsPostgresWithoutDSN(t *testing.T) {
	t.Setenv(PostgresTestDSNEnv, "")

	skipped := false
	t.Run("postgres", func(t *testing.T) {
		t.Cleanup(func() { skipped = t.Skipped() })
		SetupTestDB(t, config.PostgresDbType)
		t.Error("expected SetupTestDB to skip")
	})
	assert.True(t, skipped)
}
