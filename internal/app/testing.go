//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyPairService  keys.KeyPairService
	ProtocolService keys.ProtocolService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	processor, err := cryptography.NewTextbookRSAProcessor(nil, logger)
	require.NoError(t, err, "Error creating textbook RSA processor")

	keyPairService, err := NewKeyPairService(processor, dbContext.KeyPairRepo, config.DefaultKeySettings(), logger)
	require.NoError(t, err, "Error creating KeyPairService")

	protocolService, err := NewProtocolService(processor, dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Error creating ProtocolService")

	return &TestServices{
		KeyPairService:  keyPairService,
		ProtocolService: protocolService,
		DBContext:       dbContext,
	}
}
