//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// PostgresTestDSNEnv names the server DSN (without dbname) used by PostgreSQL integration
// tests, e.g. "user=postgres password=postgres host=localhost port=5432 sslmode=disable".
// Those tests are skipped when it is unset.
const PostgresTestDSNEnv = "TEXTBOOK_RSA_TEST_POSTGRES_DSN"

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
			Name: "textbook_rsa_test",
		}

	case config.PostgresDbType:
		dsn := os.Getenv(PostgresTestDSNEnv)
		if dsn == "" {
			t.Skipf("%s not set, skipping PostgreSQL test", PostgresTestDSNEnv)
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  dsn,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(dsn+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	repo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: repo,
	}
}

// CreateTestKeyPair creates the p=13, q=7, e=5 key pair owned by userID
func CreateTestKeyPair(t *testing.T, userID string) *keys.KeyPairMeta {
	t.Helper()
	return CreateTestKeyPairWithOptions(t, userID, 13, 7, 5, 29)
}

// CreateTestKeyPairWithOptions creates a key pair with explicit primes and exponents
func CreateTestKeyPairWithOptions(t *testing.T, userID string, p, q, e, d int64) *keys.KeyPairMeta {
	t.Helper()

	return keys.NewKeyPairMeta(userID, p, q, &cryptoalg.KeyPair{
		PublicExponent:  cryptoalg.Key(e),
		PrivateExponent: cryptoalg.Key(d),
		Modulus:         uint64(p * q),
	})
}
