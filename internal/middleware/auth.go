package middleware

import (
	"bankist/internal/errors"
	"bankist/internal/handlers"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireSession creates a middleware that requires a valid session token
// and checks that the token still matches the bank's current session. A
// token outlives its login when another account logs in or the holder
// logs out; both cases are rejected here.
func RequireSession(tokenService services.TokenServiceInterface, bankService services.BankServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			account, err := bankService.CurrentAccount()
			if err != nil || account.Username != claims.Username {
				return handlers.SendError(c, errors.AuthNoActiveSession)
			}

			c.Set("username", claims.Username)
			c.Set("owner", claims.Owner)

			return next(c)
		}
	}
}
