package handlers

import (
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditHandler exposes the operation audit trail
type AuditHandler struct {
	auditService services.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetRecent returns the newest audit entries
// @Summary Recent audit entries
// @Description List the most recent operation audit entries, newest first
// @Tags Audit
// @Produce json
// @Param limit query int false "Maximum entries to return" default(50)
// @Success 200 {object} SuccessResponse{data=[]dto.AuditEntryResponse} "Audit entries"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_002"
// @Router /audit [get]
func (h *AuditHandler) GetRecent(c echo.Context) error {
	limit := getIntParam(c, "limit", 50)

	entries, err := h.auditService.Recent(limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	rows := make([]dto.AuditEntryResponse, len(entries))
	for i, entry := range entries {
		rows[i] = dto.AuditEntryResponse{
			ID:        entry.ID.String(),
			Username:  entry.Username,
			Action:    entry.Action,
			Succeeded: entry.Succeeded,
			Reason:    entry.Reason,
			Metadata:  entry.Metadata,
			CreatedAt: entry.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
	})
}
