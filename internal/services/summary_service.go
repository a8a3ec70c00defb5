package services

import (
	"bankist/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// summaryService implements SummaryCalculatorInterface. It is stateless:
// every figure is recomputed in full from the movements passed in, so a
// summary can never go stale after a ledger mutation.
type summaryService struct{}

// NewSummaryService creates a summary calculator.
func NewSummaryService() SummaryCalculatorInterface {
	return &summaryService{}
}

// Balance sums every movement amount, deposits and withdrawals alike.
func (s *summaryService) Balance(movements []models.Movement) decimal.Decimal {
	balance := decimal.Zero
	for i := range movements {
		balance = balance.Add(movements[i].Amount)
	}
	return balance
}

// TotalDeposits sums the strictly positive movement amounts.
func (s *summaryService) TotalDeposits(movements []models.Movement) decimal.Decimal {
	total := decimal.Zero
	for i := range movements {
		if movements[i].Amount.GreaterThan(decimal.Zero) {
			total = total.Add(movements[i].Amount)
		}
	}
	return total
}

// TotalWithdrawals sums the negative movement amounts and returns the
// absolute value.
func (s *summaryService) TotalWithdrawals(movements []models.Movement) decimal.Decimal {
	total := decimal.Zero
	for i := range movements {
		if movements[i].Amount.LessThan(decimal.Zero) {
			total = total.Add(movements[i].Amount)
		}
	}
	return total.Abs()
}

// QualifyingInterest computes deposit * rate / 100 per deposit and sums
// only the interest amounts >= 1. The threshold excludes small amounts
// outright, it does not round them: a deposit whose interest comes to
// exactly 1.0 is included, 0.999... is not.
func (s *summaryService) QualifyingInterest(movements []models.Movement, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	one := decimal.NewFromInt(1)

	for i := range movements {
		if !movements[i].Amount.GreaterThan(decimal.Zero) {
			continue
		}

		interest := movements[i].Amount.Mul(rate).Div(oneHundred)
		if interest.GreaterThanOrEqual(one) {
			total = total.Add(interest)
		}
	}
	return total
}

// Summarize derives all four figures from the account's ledger snapshot.
func (s *summaryService) Summarize(account *models.Account) *models.AccountSummary {
	movements := account.Ledger.Snapshot()

	return &models.AccountSummary{
		Balance:            s.Balance(movements),
		TotalDeposits:      s.TotalDeposits(movements),
		TotalWithdrawals:   s.TotalWithdrawals(movements),
		QualifyingInterest: s.QualifyingInterest(movements, account.InterestRate),
	}
}
