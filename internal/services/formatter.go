package services

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisplayFormatter renders amounts the way the account holder expects to
// read them: grouped and decimal-separated per locale, with the currency
// symbol for the account's currency. Printers are cached per locale.
type DisplayFormatter struct {
	mu       sync.Mutex
	printers map[string]*message.Printer
}

// NewDisplayFormatter creates a display formatter.
func NewDisplayFormatter() DisplayFormatterInterface {
	return &DisplayFormatter{
		printers: make(map[string]*message.Printer),
	}
}

// FormatAmount formats an amount for the given ISO currency code and
// BCP 47 locale. Unknown locales or currencies fall back to a plain
// two-decimal rendering so display never fails an operation.
func (df *DisplayFormatter) FormatAmount(amount decimal.Decimal, currencyCode, locale string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return amount.StringFixed(2)
	}

	printer, err := df.printerFor(locale)
	if err != nil {
		return fmt.Sprintf("%s %s", currencyCode, amount.StringFixed(2))
	}

	return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
}

func (df *DisplayFormatter) printerFor(locale string) (*message.Printer, error) {
	df.mu.Lock()
	defer df.mu.Unlock()

	if printer, ok := df.printers[locale]; ok {
		return printer, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}

	printer := message.NewPrinter(tag)
	df.printers[locale] = printer
	return printer, nil
}
