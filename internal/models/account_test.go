package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		owner    string
		expected string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Jessica Davis", "jd"},
		{"Steven Thomas Williams", "stw"},
		{"Sarah Smith", "ss"},
		{"  Padded   Name  ", "pn"},
		{"single", "s"},
	}

	for _, tt := range tests {
		t.Run(tt.owner, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveUsername(tt.owner))
		})
	}
}

func TestNewAccount(t *testing.T) {
	account, err := NewAccount("Jonas Schmedtmann", 1111, decimal.NewFromFloat(1.2), "eur", "pt-PT")
	require.NoError(t, err)

	assert.Equal(t, "Jonas Schmedtmann", account.Owner)
	assert.Equal(t, "js", account.Username)
	assert.Equal(t, "EUR", account.Currency)
	assert.Equal(t, "pt-PT", account.Locale)
	assert.Equal(t, 0, account.Ledger.Len())
}

func TestNewAccountValidation(t *testing.T) {
	rate := decimal.NewFromFloat(1.2)

	tests := []struct {
		name     string
		owner    string
		pin      int
		rate     decimal.Decimal
		currency string
		locale   string
		wantErr  error
	}{
		{"empty owner", "", 1111, rate, "EUR", "pt-PT", ErrEmptyOwner},
		{"zero pin", "Jonas Schmedtmann", 0, rate, "EUR", "pt-PT", ErrInvalidPIN},
		{"negative pin", "Jonas Schmedtmann", -1, rate, "EUR", "pt-PT", ErrInvalidPIN},
		{"negative rate", "Jonas Schmedtmann", 1111, decimal.NewFromInt(-1), "EUR", "pt-PT", ErrNegativeRate},
		{"bad currency", "Jonas Schmedtmann", 1111, rate, "EU", "pt-PT", ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccount(tt.owner, tt.pin, tt.rate, tt.currency, tt.locale)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAccountRejectsBadLocale(t *testing.T) {
	_, err := NewAccount("Jonas Schmedtmann", 1111, decimal.NewFromFloat(1.2), "EUR", "not a locale!")
	assert.Error(t, err)
}

func TestCheckPIN(t *testing.T) {
	account, err := NewAccount("Jessica Davis", 2222, decimal.NewFromFloat(1.5), "USD", "en-US")
	require.NoError(t, err)

	assert.True(t, account.CheckPIN(2222))
	assert.False(t, account.CheckPIN(1111))
	assert.False(t, account.CheckPIN(0))
}

func TestFirstName(t *testing.T) {
	account, err := NewAccount("Jessica Davis", 2222, decimal.NewFromFloat(1.5), "USD", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "Jessica", account.FirstName())
}
