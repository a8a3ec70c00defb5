package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bankist/internal/config"
	"bankist/internal/models"
	"bankist/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// seedAccount is the JSON shape of one account in a seed file.
type seedAccount struct {
	Owner        string         `json:"owner"`
	PIN          int            `json:"pin"`
	InterestRate string         `json:"interest_rate"`
	Currency     string         `json:"currency"`
	Locale       string         `json:"locale"`
	Movements    []seedMovement `json:"movements"`
}

type seedMovement struct {
	Amount     string    `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ProvisioningService fills the account directory at startup, either
// from a JSON seed file or from the built-in demo accounts, optionally
// topped up with generated accounts.
type ProvisioningService struct {
	directory repositories.AccountDirectoryInterface
	seed      config.SeedConfig
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewProvisioningService creates a provisioning service.
func NewProvisioningService(
	directory repositories.AccountDirectoryInterface,
	seed config.SeedConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ProvisioningServiceInterface {
	return &ProvisioningService{
		directory: directory,
		seed:      seed,
		metrics:   metrics,
		logger:    logger,
	}
}

// LoadDirectory provisions the directory and returns the account count.
func (ps *ProvisioningService) LoadDirectory() (int, error) {
	var seeds []seedAccount
	var err error

	if ps.seed.File != "" {
		seeds, err = ps.loadSeedFile(ps.seed.File)
		if err != nil {
			return 0, err
		}
		ps.logger.Info("loaded seed file", "path", ps.seed.File, "accounts", len(seeds))
	} else {
		seeds = builtinAccounts()
	}

	for _, s := range seeds {
		if err := ps.provision(s); err != nil {
			return 0, fmt.Errorf("failed to provision account for %q: %w", s.Owner, err)
		}
	}

	if ps.seed.DemoAccounts > 0 {
		added, err := ps.generateDemoAccounts(ps.seed.DemoAccounts)
		if err != nil {
			return 0, err
		}
		ps.logger.Info("generated demo accounts", "count", added)
	}

	count := ps.directory.Len()
	ps.metrics.SetGauge("bank_directory_accounts", float64(count))
	return count, nil
}

func (ps *ProvisioningService) loadSeedFile(path string) ([]seedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []seedAccount
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seeds, nil
}

func (ps *ProvisioningService) provision(s seedAccount) error {
	rate, err := decimal.NewFromString(s.InterestRate)
	if err != nil {
		return fmt.Errorf("invalid interest rate %q: %w", s.InterestRate, err)
	}

	account, err := models.NewAccount(s.Owner, s.PIN, rate, s.Currency, s.Locale)
	if err != nil {
		return err
	}

	for _, m := range s.Movements {
		amount, err := decimal.NewFromString(m.Amount)
		if err != nil {
			return fmt.Errorf("invalid movement amount %q: %w", m.Amount, err)
		}
		account.Ledger.Append(amount, m.RecordedAt)
	}

	return ps.directory.Add(account)
}

// generateDemoAccounts fills the directory with plausible extra accounts.
// Username collisions with existing accounts are resolved by drawing a
// new name, up to a retry cap per account.
func (ps *ProvisioningService) generateDemoAccounts(count int) (int, error) {
	currencies := []string{"EUR", "USD", "GBP"}
	locales := []string{"pt-PT", "en-US", "en-GB", "de-DE"}

	added := 0
	for i := 0; i < count; i++ {
		var provisioned bool
		for attempt := 0; attempt < 10; attempt++ {
			owner := gofakeit.Name()
			pin := gofakeit.Number(1000, 9999)
			rate := decimal.NewFromFloat(gofakeit.Float64Range(0.5, 2.5)).Round(1)
			currency := currencies[gofakeit.Number(0, len(currencies)-1)]
			locale := locales[gofakeit.Number(0, len(locales)-1)]

			account, err := models.NewAccount(owner, pin, rate, currency, locale)
			if err != nil {
				continue
			}

			ps.seedDemoMovements(account)

			if err := ps.directory.Add(account); err != nil {
				// Duplicate username, try another name
				continue
			}
			provisioned = true
			break
		}
		if !provisioned {
			return added, fmt.Errorf("could not generate a unique demo account after retries")
		}
		added++
	}
	return added, nil
}

func (ps *ProvisioningService) seedDemoMovements(account *models.Account) {
	movementCount := gofakeit.Number(4, 10)
	recordedAt := time.Now().AddDate(0, -movementCount, 0)

	// Open with a deposit so the balance starts positive
	account.Ledger.Append(decimal.NewFromFloat(gofakeit.Float64Range(500, 5000)).Round(2), recordedAt)

	for i := 1; i < movementCount; i++ {
		recordedAt = recordedAt.AddDate(0, 1, gofakeit.Number(-10, 10))
		amount := decimal.NewFromFloat(gofakeit.Float64Range(-800, 1500)).Round(2)
		if amount.IsZero() {
			amount = decimal.NewFromInt(50)
		}
		account.Ledger.Append(amount, recordedAt)
	}
}

// builtinAccounts returns the stock demo accounts available out of the box.
func builtinAccounts() []seedAccount {
	return []seedAccount{
		{
			Owner:        "Jonas Schmedtmann",
			PIN:          1111,
			InterestRate: "1.2",
			Currency:     "EUR",
			Locale:       "pt-PT",
			Movements: []seedMovement{
				{Amount: "200", RecordedAt: mustParseTime("2019-11-18T21:31:17.178Z")},
				{Amount: "455.23", RecordedAt: mustParseTime("2019-12-23T07:42:02.383Z")},
				{Amount: "-306.5", RecordedAt: mustParseTime("2020-01-28T09:15:04.904Z")},
				{Amount: "25000", RecordedAt: mustParseTime("2020-04-01T10:17:24.185Z")},
				{Amount: "-642.21", RecordedAt: mustParseTime("2020-05-08T14:11:59.604Z")},
				{Amount: "-133.9", RecordedAt: mustParseTime("2020-05-27T17:01:17.194Z")},
				{Amount: "79.97", RecordedAt: mustParseTime("2020-07-11T23:36:17.929Z")},
				{Amount: "1300", RecordedAt: mustParseTime("2020-07-12T10:51:36.790Z")},
			},
		},
		{
			Owner:        "Jessica Davis",
			PIN:          2222,
			InterestRate: "1.5",
			Currency:     "USD",
			Locale:       "en-US",
			Movements: []seedMovement{
				{Amount: "5000", RecordedAt: mustParseTime("2019-11-01T13:15:33.035Z")},
				{Amount: "3400", RecordedAt: mustParseTime("2019-11-30T09:48:16.867Z")},
				{Amount: "-150", RecordedAt: mustParseTime("2019-12-25T06:04:23.907Z")},
				{Amount: "-790", RecordedAt: mustParseTime("2020-01-25T14:18:46.235Z")},
				{Amount: "-3210", RecordedAt: mustParseTime("2020-02-05T16:33:06.386Z")},
				{Amount: "-1000", RecordedAt: mustParseTime("2020-04-10T14:43:26.374Z")},
				{Amount: "8500", RecordedAt: mustParseTime("2020-06-25T18:49:59.371Z")},
				{Amount: "-30", RecordedAt: mustParseTime("2020-07-26T12:01:20.894Z")},
			},
		},
	}
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in timestamp %q: %v", value, err))
	}
	return t
}
