package testutils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/model"
)

// SetupTestDB creates an in-memory SQLite database with all tables migrated.
// Each call returns a fresh, isolated database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

// SetupTestConfig initializes the global config with test values.
// Token issuance reads config.Conf.JWT, so tests that touch tokens need this.
func SetupTestConfig(t *testing.T) {
	t.Helper()

	previous := config.Conf
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: 1,
		},
	}
	t.Cleanup(func() {
		config.Conf = previous
	})
}
