package repositories

import (
	"bankist/internal/models"

	"github.com/google/uuid"
)

// AccountDirectoryInterface defines the account lookup surface the
// services depend on. Accounts are provisioned once at load time; the
// only runtime mutation is removal on account closure.
type AccountDirectoryInterface interface {
	Add(account *models.Account) error
	FindByUsername(username string) (*models.Account, error)
	Remove(username string)
	Usernames() []string
	Len() int
}

// AuditLogRepositoryInterface defines audit log persistence operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetRecent(limit int) ([]*models.AuditLog, error)
	GetByUsername(username string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	CountFailedLogins(username string) (int64, error)
}
