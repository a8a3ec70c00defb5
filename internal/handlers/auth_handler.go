package handlers

import (
	"fmt"
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles session endpoints
type AuthHandler struct {
	bankService  services.BankServiceInterface
	tokenService services.TokenServiceInterface
}

// NewAuthHandler creates a new session handler
func NewAuthHandler(bankService services.BankServiceInterface, tokenService services.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{
		bankService:  bankService,
		tokenService: tokenService,
	}
}

// Login handles account authentication
// @Summary Log in to an account
// @Description Authenticate with username and PIN, receive a session token
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SessionResponse "Login successful with session token"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Invalid credentials - AUTH_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.bankService.Authenticate(req.Username, req.PIN)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	token, expiresAt, err := h.tokenService.GenerateSessionToken(account)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		Welcome:   fmt.Sprintf("Welcome back, %s!", account.FirstName()),
		Account: dto.Profile{
			Owner:    account.Owner,
			Username: account.Username,
			Currency: account.Currency,
			Locale:   account.Locale,
		},
	})
}

// Logout ends the current session
// @Summary Log out
// @Description End the current session
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.bankService.Logout()

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logged out successfully",
	})
}
