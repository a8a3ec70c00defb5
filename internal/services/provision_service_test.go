package services

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"bankist/internal/config"
	"bankist/internal/models"
	"bankist/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvisioner(t *testing.T, directory repositories.AccountDirectoryInterface, seed config.SeedConfig) ProvisioningServiceInterface {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProvisioningService(directory, seed, noopMetrics{}, logger)
}

func TestLoadDirectoryBuiltinAccounts(t *testing.T) {
	directory := repositories.NewAccountDirectory()
	provisioner := newProvisioner(t, directory, config.SeedConfig{})

	count, err := provisioner.LoadDirectory()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	jonas, err := directory.FindByUsername("js")
	require.NoError(t, err)
	assert.Equal(t, "Jonas Schmedtmann", jonas.Owner)
	assert.Equal(t, "EUR", jonas.Currency)
	assert.Equal(t, "pt-PT", jonas.Locale)
	assert.True(t, jonas.CheckPIN(1111))
	assert.True(t, jonas.InterestRate.Equal(decimal.NewFromFloat(1.2)))
	require.Equal(t, 8, jonas.Ledger.Len())

	movements := jonas.Ledger.Snapshot()
	assert.True(t, movements[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, movements[3].Amount.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, 2019, movements[0].RecordedAt.Year())

	jessica, err := directory.FindByUsername("jd")
	require.NoError(t, err)
	assert.Equal(t, "Jessica Davis", jessica.Owner)
	assert.Equal(t, "USD", jessica.Currency)
	assert.True(t, jessica.CheckPIN(2222))
	assert.Equal(t, 8, jessica.Ledger.Len())
}

func TestLoadDirectoryIsDeterministic(t *testing.T) {
	first := repositories.NewAccountDirectory()
	second := repositories.NewAccountDirectory()

	_, err := newProvisioner(t, first, config.SeedConfig{}).LoadDirectory()
	require.NoError(t, err)
	_, err = newProvisioner(t, second, config.SeedConfig{}).LoadDirectory()
	require.NoError(t, err)

	assert.Equal(t, first.Usernames(), second.Usernames())
}

func TestLoadDirectoryFromSeedFile(t *testing.T) {
	seeds := []seedAccount{
		{
			Owner:        "Steven Thomas Williams",
			PIN:          3333,
			InterestRate: "0.7",
			Currency:     "EUR",
			Locale:       "en-GB",
			Movements: []seedMovement{
				{Amount: "430", RecordedAt: mustParseTime("2019-11-01T13:15:33.035Z")},
				{Amount: "-45", RecordedAt: mustParseTime("2019-12-01T13:15:33.035Z")},
			},
		},
	}

	data, err := json.Marshal(seeds)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	directory := repositories.NewAccountDirectory()
	count, err := newProvisioner(t, directory, config.SeedConfig{File: path}).LoadDirectory()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	account, err := directory.FindByUsername("stw")
	require.NoError(t, err)
	assert.Equal(t, "Steven Thomas Williams", account.Owner)
	assert.Equal(t, 2, account.Ledger.Len())
}

func TestLoadDirectoryMissingSeedFile(t *testing.T) {
	directory := repositories.NewAccountDirectory()

	_, err := newProvisioner(t, directory, config.SeedConfig{File: "/does/not/exist.json"}).LoadDirectory()
	assert.Error(t, err)
}

func TestLoadDirectoryWithDemoAccounts(t *testing.T) {
	directory := repositories.NewAccountDirectory()

	count, err := newProvisioner(t, directory, config.SeedConfig{DemoAccounts: 3}).LoadDirectory()
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Every generated account is loadable and internally consistent
	for _, username := range directory.Usernames() {
		account, err := directory.FindByUsername(username)
		require.NoError(t, err)
		assert.NoError(t, account.Validate())
		assert.Equal(t, models.DeriveUsername(account.Owner), account.Username)
		assert.GreaterOrEqual(t, account.Ledger.Len(), 1)
	}
}
