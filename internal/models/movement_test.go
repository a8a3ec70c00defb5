package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementType(t *testing.T) {
	deposit := NewMovement(decimal.NewFromInt(200), time.Now())
	withdrawal := NewMovement(decimal.NewFromInt(-150), time.Now())

	assert.Equal(t, MovementTypeDeposit, deposit.Type())
	assert.True(t, deposit.IsDeposit())
	assert.Equal(t, MovementTypeWithdrawal, withdrawal.Type())
	assert.False(t, withdrawal.IsDeposit())
}

func TestLedgerAppendPreservesOrder(t *testing.T) {
	ledger := NewLedger()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	amounts := []int64{200, -150, 5000, -30}
	for i, amount := range amounts {
		ledger.Append(decimal.NewFromInt(amount), base.AddDate(0, 0, i))
	}

	require.Equal(t, len(amounts), ledger.Len())

	snapshot := ledger.Snapshot()
	for i, amount := range amounts {
		assert.True(t, snapshot[i].Amount.Equal(decimal.NewFromInt(amount)))
	}
}

func TestLedgerSnapshotIsACopy(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(decimal.NewFromInt(100), time.Now())

	snapshot := ledger.Snapshot()
	snapshot[0].Amount = decimal.NewFromInt(999)

	assert.True(t, ledger.Snapshot()[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestLedgerSortedViewDoesNotMutateStoredOrder(t *testing.T) {
	ledger := NewLedger()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	amounts := []float64{200, 455.23, -306.5, 25000, -642.21, -133.9, 79.97, 1300}
	for i, amount := range amounts {
		ledger.Append(decimal.NewFromFloat(amount), base.AddDate(0, i, 0))
	}

	ascending := ledger.SortedView(true)
	require.Len(t, ascending, len(amounts))
	for i := 1; i < len(ascending); i++ {
		assert.True(t, ascending[i-1].Amount.LessThanOrEqual(ascending[i].Amount))
	}

	// Stored order unchanged after sorting
	snapshot := ledger.Snapshot()
	for i, amount := range amounts {
		assert.True(t, snapshot[i].Amount.Equal(decimal.NewFromFloat(amount)))
	}

	descending := ledger.SortedView(false)
	for i := 1; i < len(descending); i++ {
		assert.True(t, descending[i-1].Amount.GreaterThanOrEqual(descending[i].Amount))
	}
}

func TestLedgerSortedViewIsStableForEqualAmounts(t *testing.T) {
	ledger := NewLedger()
	first := ledger.Append(decimal.NewFromInt(100), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	second := ledger.Append(decimal.NewFromInt(100), time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC))

	view := ledger.SortedView(true)
	require.Len(t, view, 2)
	assert.Equal(t, first.ID, view[0].ID)
	assert.Equal(t, second.ID, view[1].ID)
}

func TestLedgerAmounts(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(decimal.NewFromInt(10), time.Now())
	ledger.Append(decimal.NewFromInt(-5), time.Now())

	amounts := ledger.Amounts()
	require.Len(t, amounts, 2)
	assert.True(t, amounts[0].Equal(decimal.NewFromInt(10)))
	assert.True(t, amounts[1].Equal(decimal.NewFromInt(-5)))
}
