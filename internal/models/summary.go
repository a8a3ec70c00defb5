package models

import (
	"github.com/shopspring/decimal"
)

// AccountSummary holds the derived figures recomputed from a ledger
// snapshot after every mutation. Nothing in here is ever cached.
type AccountSummary struct {
	Balance            decimal.Decimal `json:"balance"`
	TotalDeposits      decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals   decimal.Decimal `json:"total_withdrawals"`
	QualifyingInterest decimal.Decimal `json:"qualifying_interest"`
}
