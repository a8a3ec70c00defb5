package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MovementTypeDeposit    = "deposit"
	MovementTypeWithdrawal = "withdrawal"
)

// Movement is a single signed ledger entry. Positive amounts are deposits,
// negative amounts are withdrawals; the sign is chosen by the caller.
type Movement struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// NewMovement creates a movement with a fresh ID.
func NewMovement(amount decimal.Decimal, recordedAt time.Time) Movement {
	return Movement{
		ID:         uuid.New(),
		Amount:     amount,
		RecordedAt: recordedAt,
	}
}

// Type returns "deposit" for positive amounts and "withdrawal" otherwise.
func (m Movement) Type() string {
	if m.Amount.GreaterThan(decimal.Zero) {
		return MovementTypeDeposit
	}
	return MovementTypeWithdrawal
}

// IsDeposit returns true if the movement amount is strictly positive.
func (m Movement) IsDeposit() bool {
	return m.Amount.GreaterThan(decimal.Zero)
}

// Ledger is an append-only sequence of movements for one account.
// Stored order is insertion order and doubles as the transaction history;
// sorted output is always a copy, never a mutation.
type Ledger struct {
	movements []Movement
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds a movement to the end of the ledger. Amount sign is not
// validated here; deposits and withdrawals are distinguished by sign alone.
func (l *Ledger) Append(amount decimal.Decimal, recordedAt time.Time) Movement {
	movement := NewMovement(amount, recordedAt)
	l.movements = append(l.movements, movement)
	return movement
}

// Len returns the number of movements in the ledger.
func (l *Ledger) Len() int {
	return len(l.movements)
}

// Snapshot returns a copy of the movements in stored (chronological) order.
func (l *Ledger) Snapshot() []Movement {
	snapshot := make([]Movement, len(l.movements))
	copy(snapshot, l.movements)
	return snapshot
}

// SortedView returns a new slice sorted by amount without touching stored
// order. The sort is stable, so equal amounts keep their relative order.
func (l *Ledger) SortedView(ascending bool) []Movement {
	view := l.Snapshot()
	sort.SliceStable(view, func(i, j int) bool {
		if ascending {
			return view[i].Amount.LessThan(view[j].Amount)
		}
		return view[i].Amount.GreaterThan(view[j].Amount)
	})
	return view
}

// Amounts returns just the movement amounts in stored order.
func (l *Ledger) Amounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(l.movements))
	for i := range l.movements {
		amounts[i] = l.movements[i].Amount
	}
	return amounts
}
