package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmountUsesCurrencySymbol(t *testing.T) {
	formatter := NewDisplayFormatter()

	formatted := formatter.FormatAmount(decimal.NewFromFloat(1234.5), "USD", "en-US")

	assert.Contains(t, formatted, "$")
	assert.Contains(t, formatted, "1,234.50")
}

func TestFormatAmountRespectsLocale(t *testing.T) {
	formatter := NewDisplayFormatter()

	us := formatter.FormatAmount(decimal.NewFromFloat(1234.5), "EUR", "en-US")
	pt := formatter.FormatAmount(decimal.NewFromFloat(1234.5), "EUR", "pt-PT")

	// Same amount and currency render differently per locale
	assert.NotEqual(t, us, pt)
}

func TestFormatAmountUnknownCurrencyFallsBack(t *testing.T) {
	formatter := NewDisplayFormatter()

	formatted := formatter.FormatAmount(decimal.NewFromFloat(99.9), "XXX?", "en-US")

	assert.Equal(t, "99.90", formatted)
}

func TestFormatAmountUnknownLocaleFallsBack(t *testing.T) {
	formatter := NewDisplayFormatter()

	formatted := formatter.FormatAmount(decimal.NewFromFloat(99.9), "USD", "not a locale!")

	assert.Equal(t, "USD 99.90", formatted)
}

func TestFormatAmountCachesPrinters(t *testing.T) {
	formatter := NewDisplayFormatter()

	first := formatter.FormatAmount(decimal.NewFromInt(10), "USD", "en-US")
	second := formatter.FormatAmount(decimal.NewFromInt(10), "USD", "en-US")

	assert.Equal(t, first, second)
}
