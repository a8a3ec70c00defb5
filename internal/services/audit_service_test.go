package services

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"bankist/internal/database"
	"bankist/internal/models"
	"bankist/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingAuditRepo always errors, for the swallow-and-log path
type failingAuditRepo struct{}

func (failingAuditRepo) Create(*models.AuditLog) error { return errors.New("store down") }
func (failingAuditRepo) GetByID(uuid.UUID) (*models.AuditLog, error) {
	return nil, errors.New("store down")
}
func (failingAuditRepo) GetRecent(int) ([]*models.AuditLog, error) {
	return nil, errors.New("store down")
}
func (failingAuditRepo) GetByUsername(string, int, int) ([]*models.AuditLog, int64, error) {
	return nil, 0, errors.New("store down")
}
func (failingAuditRepo) GetByAction(string, int, int) ([]*models.AuditLog, int64, error) {
	return nil, 0, errors.New("store down")
}
func (failingAuditRepo) CountFailedLogins(string) (int64, error) { return 0, errors.New("store down") }

func TestAuditServiceRecordAndRecent(t *testing.T) {
	db := database.SetupTestDB(t)
	t.Cleanup(func() { _ = db.Close() })

	repo := repositories.NewAuditLogRepository(db.DB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuditService(repo, logger)

	service.Record("js", models.AuditActionTransfer, true, "", models.JSONMap{"to": "jd"})
	service.Record("js", models.AuditActionLoan, false, "no qualifying deposit", nil)

	entries, err := service.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		assert.Equal(t, "js", entry.Username)
	}
}

func TestAuditServiceRecordSwallowsStoreErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuditService(failingAuditRepo{}, logger)

	// Must not panic or surface the error
	service.Record("js", models.AuditActionLogin, true, "", nil)
}
