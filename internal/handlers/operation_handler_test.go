package handlers

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferSuccess(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodPost, "/account/transfers", `{"to":"jd","amount":90}`)
	require.NoError(t, handler.Transfer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	recipient, err := env.directory.FindByUsername("jd")
	require.NoError(t, err)
	movements := recipient.Ledger.Snapshot()
	assert.True(t, movements[len(movements)-1].Amount.Equal(decimal.NewFromInt(90)))
}

func TestTransferInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodPost, "/account/transfers", `{"to":"jd","amount":1000000}`)
	require.NoError(t, handler.Transfer(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, jsonBody(rec), "TRANSFER_003")
}

func TestTransferToSelf(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodPost, "/account/transfers", `{"to":"js","amount":10}`)
	require.NoError(t, handler.Transfer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, jsonBody(rec), "TRANSFER_001")
}

func TestTransferUnknownRecipient(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodPost, "/account/transfers", `{"to":"zz","amount":10}`)
	require.NoError(t, handler.Transfer(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, jsonBody(rec), "TRANSFER_004")
}

func TestTransferWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)

	c, rec := env.request(http.MethodPost, "/account/transfers", `{"to":"jd","amount":10}`)
	require.NoError(t, handler.Transfer(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, jsonBody(rec), "AUTH_005")
}

func TestLoanGranted(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodPost, "/account/loans", `{"amount":2000}`)
	require.NoError(t, handler.RequestLoan(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	account, err := env.bankService.CurrentAccount()
	require.NoError(t, err)
	movements := account.Ledger.Snapshot()
	assert.True(t, movements[len(movements)-1].Amount.Equal(decimal.NewFromInt(2000)))
}

func TestLoanNotQualified(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodPost, "/account/loans", `{"amount":300000}`)
	require.NoError(t, handler.RequestLoan(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, jsonBody(rec), "LOAN_002")
}

func TestLoanWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)

	c, rec := env.request(http.MethodPost, "/account/loans", `{"amount":100}`)
	require.NoError(t, handler.RequestLoan(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCloseAccountSuccess(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodDelete, "/account", `{"username":"js","pin":1111}`)
	require.NoError(t, handler.CloseAccount(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := env.directory.FindByUsername("js")
	assert.Error(t, err)
}

func TestCloseAccountCredentialMismatch(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)
	env.login(t, "js", 1111)

	c, rec := env.request(http.MethodDelete, "/account", `{"username":"jd","pin":1111}`)
	require.NoError(t, handler.CloseAccount(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, jsonBody(rec), "ACCOUNT_002")

	_, err := env.directory.FindByUsername("js")
	assert.NoError(t, err)
}

func TestCloseAccountWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	handler := NewOperationHandler(env.bankService)

	c, rec := env.request(http.MethodDelete, "/account", `{"username":"js","pin":1111}`)
	require.NoError(t, handler.CloseAccount(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
