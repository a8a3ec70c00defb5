package handlers

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bankist/internal/config"
	"bankist/internal/models"
	"bankist/internal/repositories"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// quietAudit discards audit records
type quietAudit struct{}

func (quietAudit) Record(string, string, bool, string, models.JSONMap) {}
func (quietAudit) Recent(int) ([]*models.AuditLog, error)             { return nil, nil }

// quietMetrics discards metric recordings
type quietMetrics struct{}

func (quietMetrics) IncrementCounter(string, map[string]string) {}
func (quietMetrics) RecordProcessingTime(string, time.Duration) {}
func (quietMetrics) RecordAmount(string, float64)               {}
func (quietMetrics) SetGauge(string, float64)                   {}

type testEnv struct {
	echo        *echo.Echo
	directory   repositories.AccountDirectoryInterface
	bankService services.BankServiceInterface
	token       services.TokenServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	directory := repositories.NewAccountDirectory()
	seedTestAccount(t, directory, "Jonas Schmedtmann", 1111, 1.2, "EUR", "pt-PT",
		200, 455.23, -306.5, 25000, -642.21, -133.9, 79.97, 1300)
	seedTestAccount(t, directory, "Jessica Davis", 2222, 1.5, "USD", "en-US",
		5000, 3400, -150, -790, -3210, -1000, 8500, -30)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bankService := services.NewBankService(directory, services.NewSummaryService(), quietAudit{}, quietMetrics{}, logger)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)
	tokenService := services.NewTokenService(&config.SessionConfig{
		Duration:   5 * time.Minute,
		Issuer:     "bankist",
		PrivateKey: privateKey,
		PublicKey:  publicKey,
	})

	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		echo:        e,
		directory:   directory,
		bankService: bankService,
		token:       tokenService,
	}
}

func seedTestAccount(t *testing.T, directory repositories.AccountDirectoryInterface, owner string, pin int, rate float64, currency, locale string, amounts ...float64) {
	t.Helper()

	account, err := models.NewAccount(owner, pin, decimal.NewFromFloat(rate), currency, locale)
	require.NoError(t, err)

	recordedAt := time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC)
	for i, amount := range amounts {
		account.Ledger.Append(decimal.NewFromFloat(amount), recordedAt.AddDate(0, i, 0))
	}
	require.NoError(t, directory.Add(account))
}

func (env *testEnv) login(t *testing.T, username string, pin int) {
	t.Helper()

	_, err := env.bankService.Authenticate(username, pin)
	require.NoError(t, err)
}

func (env *testEnv) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func jsonBody(rec *httptest.ResponseRecorder) string {
	return rec.Body.String()
}
