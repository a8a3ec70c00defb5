package services

import (
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryCalculatorInterface derives balance, income, expense and interest
// figures from a ledger snapshot. All methods are pure; nothing is cached.
type SummaryCalculatorInterface interface {
	Balance(movements []models.Movement) decimal.Decimal
	TotalDeposits(movements []models.Movement) decimal.Decimal
	TotalWithdrawals(movements []models.Movement) decimal.Decimal
	QualifyingInterest(movements []models.Movement, rate decimal.Decimal) decimal.Decimal
	Summarize(account *models.Account) *models.AccountSummary
}

// BankServiceInterface is the session-scoped ledger operation surface.
// Operations are total: business failures come back as sentinel errors,
// never as panics. Calling an operation without an active session is the
// one precondition violation, reported as ErrNoActiveSession.
type BankServiceInterface interface {
	Authenticate(username string, pin int) (*models.Account, error)
	Logout()
	CurrentAccount() (*models.Account, error)
	Transfer(toUsername string, amount decimal.Decimal) error
	RequestLoan(amount decimal.Decimal) error
	CloseAccount(username string, pin int) error
	ToggleSort() (bool, error)
	SortEnabled() (bool, error)
	CurrentMovements(sorted bool) ([]models.Movement, error)
	CurrentSummary() (*models.AccountSummary, error)
}

// TokenServiceInterface issues and validates session tokens
type TokenServiceInterface interface {
	GenerateSessionToken(account *models.Account) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// AuditServiceInterface records ledger operations for later inspection
type AuditServiceInterface interface {
	Record(username, action string, succeeded bool, reason string, metadata models.JSONMap)
	Recent(limit int) ([]*models.AuditLog, error)
}

// ProvisioningServiceInterface builds the account directory at startup
type ProvisioningServiceInterface interface {
	LoadDirectory() (int, error)
}

// DisplayFormatterInterface renders amounts per account locale and currency
type DisplayFormatterInterface interface {
	FormatAmount(amount decimal.Decimal, currencyCode, locale string) string
}

// MetricsRecorderInterface abstracts metric recording for ledger operations
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordAmount(name string, value float64)
	SetGauge(name string, value float64)
}
