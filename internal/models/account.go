package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var (
	ErrEmptyOwner      = errors.New("account owner name is required")
	ErrInvalidPIN      = errors.New("account PIN must be positive")
	ErrNegativeRate    = errors.New("interest rate cannot be negative")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter ISO code")
)

// Account is a provisioned bank account. The username is derived from the
// owner name once at provisioning time and never changes afterwards; the
// balance is never stored, it is always recomputed from the ledger.
type Account struct {
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PIN          int             `json:"-"`
	InterestRate decimal.Decimal `json:"interest_rate"` // annual, in percent (1.2 means 1.2%)
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
	Ledger       *Ledger         `json:"-"`
}

// NewAccount builds an account with a derived username and an empty ledger.
func NewAccount(owner string, pin int, interestRate decimal.Decimal, currency, locale string) (*Account, error) {
	account := &Account{
		Owner:        strings.TrimSpace(owner),
		PIN:          pin,
		InterestRate: interestRate,
		Currency:     strings.ToUpper(currency),
		Locale:       locale,
		Ledger:       NewLedger(),
	}
	account.Username = DeriveUsername(account.Owner)

	if err := account.Validate(); err != nil {
		return nil, err
	}
	return account, nil
}

// Validate validates the account fields.
func (a *Account) Validate() error {
	if a.Owner == "" {
		return ErrEmptyOwner
	}

	if a.PIN <= 0 {
		return ErrInvalidPIN
	}

	if a.InterestRate.LessThan(decimal.Zero) {
		return ErrNegativeRate
	}

	if len(a.Currency) != 3 {
		return ErrInvalidCurrency
	}

	if _, err := language.Parse(a.Locale); err != nil {
		return errors.New("locale must be a valid BCP 47 tag")
	}

	return nil
}

// FirstName returns the first space-separated part of the owner name,
// used for the login welcome message.
func (a *Account) FirstName() string {
	parts := strings.Fields(a.Owner)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// CheckPIN compares the supplied PIN against the stored one. Plain numeric
// equality: the PIN is a toy credential, not a security boundary.
func (a *Account) CheckPIN(pin int) bool {
	return a.PIN == pin
}

// DeriveUsername lowercases the owner name, splits it on whitespace and
// concatenates the first character of each part. "Jonas Schmedtmann" -> "js".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, part := range strings.Fields(strings.ToLower(owner)) {
		runes := []rune(part)
		b.WriteRune(runes[0])
	}
	return b.String()
}
