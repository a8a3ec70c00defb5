package services

import (
	"log/slog"

	"bankist/internal/models"
	"bankist/internal/repositories"
)

// AuditService writes operation records to the audit store. Recording
// never fails the operation being recorded: a store error is logged and
// swallowed.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

// NewAuditService creates an audit service backed by the given repository.
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// Record persists one audit entry.
func (as *AuditService) Record(username, action string, succeeded bool, reason string, metadata models.JSONMap) {
	entry := &models.AuditLog{
		Username:  username,
		Action:    action,
		Succeeded: succeeded,
		Reason:    reason,
		Metadata:  metadata,
	}

	if err := as.repo.Create(entry); err != nil {
		as.logger.Error("failed to write audit entry",
			"action", action,
			"username", username,
			"error", err)
	}
}

// Recent returns the newest audit entries up to limit.
func (as *AuditService) Recent(limit int) ([]*models.AuditLog, error) {
	return as.repo.GetRecent(limit)
}
