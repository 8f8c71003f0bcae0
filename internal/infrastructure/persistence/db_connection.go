package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection opens the key-pair store described by settings
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings)
	case config.SqliteDbType:
		return connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// Migrate creates or updates the key_pairs table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// connectPostgres connects to the server, creates settings.Name if missing and reconnects to it
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.Name == "" {
		return db, nil
	}

	var exists bool
	if err := db.Raw("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = ?)", settings.Name).Scan(&exists).Error; err != nil {
		return nil, errors.Join(fmt.Errorf("failed to look up database '%s': %w", settings.Name, err), CloseDB(db))
	}
	if !exists {
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", quoteIdentifier(settings.Name))).Error; err != nil {
			return nil, errors.Join(fmt.Errorf("failed to create database '%s': %w", settings.Name, err), CloseDB(db))
		}
	}

	if err := CloseDB(db); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// connectSQLite opens a file or in-memory SQLite database
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// Every new connection to :memory: is a fresh, empty database.
	if strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) (err error) {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		err = errors.Join(err, CloseDB(db))
	}()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", quoteIdentifier(dbName))).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
