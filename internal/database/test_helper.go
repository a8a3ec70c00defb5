package database

import (
	"testing"

	"bankist/internal/config"
	"bankist/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB:     db,
		config: &config.DatabaseConfig{Path: ":memory:"},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAuditLog(t *testing.T, db *DB, username, action string, succeeded bool) *models.AuditLog {
	t.Helper()

	entry := &models.AuditLog{
		Username:  username,
		Action:    action,
		Succeeded: succeeded,
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test audit log: %v", err)
	}

	return entry
}
