package handlers

import (
	"net/http"
	"strconv"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles read endpoints for the current account
type AccountHandler struct {
	bankService services.BankServiceInterface
	formatter   services.DisplayFormatterInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(bankService services.BankServiceInterface, formatter services.DisplayFormatterInterface) *AccountHandler {
	return &AccountHandler{
		bankService: bankService,
		formatter:   formatter,
	}
}

// GetMovements returns the current account's ledger
// @Summary List movements
// @Description List the current account's movements, chronological or sorted by amount
// @Tags Account
// @Produce json
// @Param sorted query bool false "Override the session sort flag"
// @Success 200 {object} dto.MovementsResponse "Movement list"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_005"
// @Router /account/movements [get]
func (h *AccountHandler) GetMovements(c echo.Context) error {
	sorted, err := h.bankService.SortEnabled()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	// Explicit query parameter wins over the session flag
	if param := c.QueryParam("sorted"); param != "" {
		if override, parseErr := strconv.ParseBool(param); parseErr == nil {
			sorted = override
		}
	}

	movements, err := h.bankService.CurrentMovements(sorted)
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	account, err := h.bankService.CurrentAccount()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	rows := make([]dto.MovementResponse, len(movements))
	for i, m := range movements {
		rows[i] = dto.MovementResponse{
			ID:         m.ID.String(),
			Type:       m.Type(),
			Amount:     m.Amount.String(),
			Formatted:  h.formatter.FormatAmount(m.Amount, account.Currency, account.Locale),
			RecordedAt: m.RecordedAt,
		}
	}

	return c.JSON(http.StatusOK, dto.MovementsResponse{
		Movements: rows,
		Sorted:    sorted,
		Count:     len(rows),
	})
}

// GetSummary returns the derived account figures
// @Summary Account summary
// @Description Balance, total deposits, total withdrawals and qualifying interest
// @Tags Account
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Summary figures"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_005"
// @Router /account/summary [get]
func (h *AccountHandler) GetSummary(c echo.Context) error {
	summary, err := h.bankService.CurrentSummary()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	account, err := h.bankService.CurrentAccount()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		Balance:           summary.Balance.String(),
		BalanceFormatted:  h.formatter.FormatAmount(summary.Balance, account.Currency, account.Locale),
		In:                summary.TotalDeposits.String(),
		InFormatted:       h.formatter.FormatAmount(summary.TotalDeposits, account.Currency, account.Locale),
		Out:               summary.TotalWithdrawals.String(),
		OutFormatted:      h.formatter.FormatAmount(summary.TotalWithdrawals, account.Currency, account.Locale),
		Interest:          summary.QualifyingInterest.String(),
		InterestFormatted: h.formatter.FormatAmount(summary.QualifyingInterest, account.Currency, account.Locale),
	})
}

// ToggleSort flips the session sort flag
// @Summary Toggle movement sorting
// @Description Flip the sort flag used when listing movements
// @Tags Account
// @Produce json
// @Success 200 {object} dto.SortStateResponse "New sort state"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_005"
// @Router /account/sort [post]
func (h *AccountHandler) ToggleSort(c echo.Context) error {
	sorted, err := h.bankService.ToggleSort()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	return c.JSON(http.StatusOK, dto.SortStateResponse{Sorted: sorted})
}
