package repositories

import (
	"errors"
	"fmt"
	"sort"

	"bankist/internal/models"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateUser   = errors.New("username already exists in directory")
)

// AccountDirectory is the in-process collection of accounts, keyed by
// derived username. No database sits behind it: the whole ledger model is
// in-memory for the lifetime of the process.
type AccountDirectory struct {
	accounts map[string]*models.Account
}

// NewAccountDirectory creates an empty directory.
func NewAccountDirectory() AccountDirectoryInterface {
	return &AccountDirectory{
		accounts: make(map[string]*models.Account),
	}
}

// Add registers a provisioned account. Usernames are unique; a collision
// means two owners share initials and the seed data must be fixed.
func (d *AccountDirectory) Add(account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	if account.Username == "" {
		return errors.New("account has no username")
	}

	if _, exists := d.accounts[account.Username]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateUser, account.Username)
	}

	d.accounts[account.Username] = account
	return nil
}

// FindByUsername returns the account for an exact username match.
func (d *AccountDirectory) FindByUsername(username string) (*models.Account, error) {
	account, ok := d.accounts[username]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// Remove deletes the account from the directory. Removing an unknown
// username is a no-op: the closure flow validates existence beforehand.
func (d *AccountDirectory) Remove(username string) {
	delete(d.accounts, username)
}

// Usernames returns the registered usernames in stable (sorted) order.
func (d *AccountDirectory) Usernames() []string {
	usernames := make([]string, 0, len(d.accounts))
	for username := range d.accounts {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	return usernames
}

// Len returns the number of accounts in the directory.
func (d *AccountDirectory) Len() int {
	return len(d.accounts)
}
