package database

import (
	"testing"

	"bankist/internal/config"
	"bankist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndMigrate(t *testing.T) {
	db, err := New(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate())
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	t.Cleanup(func() { _ = db.Close() })

	assert.NoError(t, db.HealthCheck())
}

func TestDSNForMemoryPath(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: ":memory:"}
	assert.Equal(t, "file::memory:?cache=shared", cfg.DSN())

	cfg = &config.DatabaseConfig{Path: "/tmp/audit.db"}
	assert.Equal(t, "/tmp/audit.db", cfg.DSN())
}
