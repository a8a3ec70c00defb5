package handlers

import (
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// OperationHandler handles ledger operations on the current account
type OperationHandler struct {
	bankService services.BankServiceInterface
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(bankService services.BankServiceInterface) *OperationHandler {
	return &OperationHandler{
		bankService: bankService,
	}
}

// Transfer moves money to another account
// @Summary Transfer money
// @Description Move an amount from the current account to another account
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.OperationResponse "Transfer completed"
// @Failure 400 {object} errors.ErrorResponse "Invalid amount or self transfer - TRANSFER_001/TRANSFER_002"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_005"
// @Failure 404 {object} errors.ErrorResponse "Recipient not found - TRANSFER_004"
// @Failure 422 {object} errors.ErrorResponse "Insufficient balance - TRANSFER_003"
// @Router /account/transfers [post]
func (h *OperationHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	err := h.bankService.Transfer(req.To, decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch err {
		case services.ErrNoActiveSession:
			return SendError(c, errors.AuthNoActiveSession)
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransferInvalidAmount)
		case services.ErrSelfTransfer:
			return SendError(c, errors.TransferSameAccount)
		case services.ErrRecipientNotFound:
			return SendError(c, errors.TransferRecipientNotFound)
		case services.ErrInsufficientBalance:
			return SendError(c, errors.TransferInsufficientFunds)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.OperationResponse{
		Message: "Transfer completed",
	})
}

// RequestLoan asks for a loan deposit
// @Summary Request a loan
// @Description Grant a loan when a past deposit reaches 10% of the requested amount
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan details"
// @Success 200 {object} dto.OperationResponse "Loan granted"
// @Failure 400 {object} errors.ErrorResponse "Invalid amount - LOAN_001"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_005"
// @Failure 422 {object} errors.ErrorResponse "No qualifying deposit - LOAN_002"
// @Router /account/loans [post]
func (h *OperationHandler) RequestLoan(c echo.Context) error {
	var req dto.LoanRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	err := h.bankService.RequestLoan(decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch err {
		case services.ErrNoActiveSession:
			return SendError(c, errors.AuthNoActiveSession)
		case services.ErrInvalidAmount:
			return SendError(c, errors.LoanInvalidAmount)
		case services.ErrLoanNotQualified:
			return SendError(c, errors.LoanNotQualified)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.OperationResponse{
		Message: "Loan granted",
	})
}

// CloseAccount removes the current account from the directory
// @Summary Close the current account
// @Description Re-confirm credentials and remove the account permanently
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.CloseAccountRequest true "Confirmation credentials"
// @Success 200 {object} dto.OperationResponse "Account closed"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_005"
// @Failure 422 {object} errors.ErrorResponse "Credential mismatch - ACCOUNT_002"
// @Router /account [delete]
func (h *OperationHandler) CloseAccount(c echo.Context) error {
	var req dto.CloseAccountRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	err := h.bankService.CloseAccount(req.Username, req.PIN)
	if err != nil {
		switch err {
		case services.ErrNoActiveSession:
			return SendError(c, errors.AuthNoActiveSession)
		case services.ErrCloseCredentialMismatch:
			return SendError(c, errors.AccountCloseCredentials)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.OperationResponse{
		Message: "Account closed",
	})
}
