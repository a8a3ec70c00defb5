package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCredentials      = errors.New("invalid username or pin")
	ErrNoActiveSession         = errors.New("no active session")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrRecipientNotFound       = errors.New("recipient account not found")
	ErrSelfTransfer            = errors.New("cannot transfer to the same account")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrLoanNotQualified        = errors.New("no deposit qualifies for the requested loan")
	ErrCloseCredentialMismatch = errors.New("credentials do not match the current account")
)

// loanQualifyingFraction is the share of the requested amount that at
// least one existing movement must reach before a loan is granted.
var loanQualifyingFraction = decimal.NewFromFloat(0.1)

// BankService owns the single session and applies ledger operations to
// it. A mutex serializes every operation: with one session there is no
// concurrency to exploit, and the lock keeps handler goroutines from
// interleaving a transfer with a closure.
type BankService struct {
	mu        sync.Mutex
	session   *Session
	directory repositories.AccountDirectoryInterface
	summaries SummaryCalculatorInterface
	audit     AuditServiceInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger

	// now is replaceable in tests so movement timestamps are deterministic
	now func() time.Time
}

// NewBankService creates a bank service in the logged-out state.
func NewBankService(
	directory repositories.AccountDirectoryInterface,
	summaries SummaryCalculatorInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *BankService {
	return &BankService{
		session:   NewSession(),
		directory: directory,
		summaries: summaries,
		audit:     audit,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Authenticate resolves the username and checks the pin. On success the
// account becomes the session's current account, replacing any previous
// login. Unknown usernames and wrong pins both come back as
// ErrInvalidCredentials so callers cannot probe the directory.
func (bs *BankService) Authenticate(username string, pin int) (*models.Account, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	start := bs.now()
	account, err := bs.directory.FindByUsername(username)
	if err != nil || !account.CheckPIN(pin) {
		bs.logger.Warn("login failed", "username", username)
		bs.audit.Record(username, models.AuditActionFailedLogin, false, "invalid credentials", nil)
		bs.metrics.IncrementCounter("bank_logins_total", map[string]string{"outcome": "failure"})
		return nil, ErrInvalidCredentials
	}

	bs.session.Set(account)

	bs.logger.Info("login succeeded", "username", account.Username, "owner", account.Owner)
	bs.audit.Record(account.Username, models.AuditActionLogin, true, "", nil)
	bs.metrics.IncrementCounter("bank_logins_total", map[string]string{"outcome": "success"})
	bs.metrics.RecordProcessingTime("authenticate", bs.now().Sub(start))

	return account, nil
}

// Logout clears the session. Safe to call when already logged out.
func (bs *BankService) Logout() {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if bs.session.IsActive() {
		username := bs.session.Account().Username
		bs.logger.Info("logout", "username", username)
		bs.audit.Record(username, models.AuditActionLogout, true, "", nil)
	}
	bs.session.Clear()
}

// CurrentAccount returns the logged-in account.
func (bs *BankService) CurrentAccount() (*models.Account, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return nil, ErrNoActiveSession
	}
	return bs.session.Account(), nil
}

// Transfer moves amount from the current account to the named recipient.
// Both ledgers gain a movement stamped with the same instant: a
// withdrawal on the sender, a deposit on the recipient. Validation runs
// in full before either ledger is touched, so a rejected transfer leaves
// no partial state behind.
func (bs *BankService) Transfer(toUsername string, amount decimal.Decimal) error {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return ErrNoActiveSession
	}

	start := bs.now()
	sender := bs.session.Account()

	if err := bs.validateTransfer(sender, toUsername, amount); err != nil {
		bs.audit.Record(sender.Username, models.AuditActionTransfer, false, err.Error(), models.JSONMap{
			"to":     toUsername,
			"amount": amount.String(),
		})
		bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "transfer", "outcome": "failure"})
		return err
	}

	recipient, err := bs.directory.FindByUsername(toUsername)
	if err != nil {
		bs.audit.Record(sender.Username, models.AuditActionTransfer, false, "recipient not found", models.JSONMap{
			"to": toUsername,
		})
		bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "transfer", "outcome": "failure"})
		return ErrRecipientNotFound
	}

	recordedAt := bs.now()
	sender.Ledger.Append(amount.Neg(), recordedAt)
	recipient.Ledger.Append(amount, recordedAt)

	bs.logger.Info("transfer completed",
		"from", sender.Username,
		"to", recipient.Username,
		"amount", amount.String())
	bs.audit.Record(sender.Username, models.AuditActionTransfer, true, "", models.JSONMap{
		"to":     recipient.Username,
		"amount": amount.String(),
	})
	bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "transfer", "outcome": "success"})
	bs.metrics.RecordAmount("bank_transfer_amount", amount.InexactFloat64())
	bs.metrics.RecordProcessingTime("transfer", bs.now().Sub(start))

	return nil
}

func (bs *BankService) validateTransfer(sender *models.Account, toUsername string, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return ErrInvalidAmount
	}
	if toUsername == sender.Username {
		return ErrSelfTransfer
	}
	if _, err := bs.directory.FindByUsername(toUsername); err != nil {
		return ErrRecipientNotFound
	}

	balance := bs.summaries.Balance(sender.Ledger.Snapshot())
	if balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// RequestLoan grants a loan when the amount is positive and at least one
// existing movement reaches 10% of it. A granted loan is a single
// deposit of the full amount on the current ledger.
func (bs *BankService) RequestLoan(amount decimal.Decimal) error {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return ErrNoActiveSession
	}

	account := bs.session.Account()

	if !amount.GreaterThan(decimal.Zero) {
		bs.audit.Record(account.Username, models.AuditActionLoan, false, "invalid amount", models.JSONMap{
			"amount": amount.String(),
		})
		bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "loan", "outcome": "failure"})
		return ErrInvalidAmount
	}

	if !bs.loanQualifies(account, amount) {
		bs.audit.Record(account.Username, models.AuditActionLoan, false, "no qualifying deposit", models.JSONMap{
			"amount": amount.String(),
		})
		bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "loan", "outcome": "failure"})
		return ErrLoanNotQualified
	}

	account.Ledger.Append(amount, bs.now())

	bs.logger.Info("loan granted", "username", account.Username, "amount", amount.String())
	bs.audit.Record(account.Username, models.AuditActionLoan, true, "", models.JSONMap{
		"amount": amount.String(),
	})
	bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "loan", "outcome": "success"})
	bs.metrics.RecordAmount("bank_loan_amount", amount.InexactFloat64())

	return nil
}

func (bs *BankService) loanQualifies(account *models.Account, amount decimal.Decimal) bool {
	threshold := amount.Mul(loanQualifyingFraction)
	movements := account.Ledger.Snapshot()
	for i := range movements {
		if movements[i].Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}

// CloseAccount removes the current account from the directory. The
// caller must re-supply the current account's own username and pin; a
// mismatch with either leaves the directory and the session untouched.
// On success the session ends, the account is unreachable to future
// logins and transfers, and its ledger goes with it.
func (bs *BankService) CloseAccount(username string, pin int) error {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return ErrNoActiveSession
	}

	account := bs.session.Account()
	if username != account.Username || !account.CheckPIN(pin) {
		bs.audit.Record(account.Username, models.AuditActionAccountClosed, false, "credential mismatch", nil)
		bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "close", "outcome": "failure"})
		return ErrCloseCredentialMismatch
	}

	bs.directory.Remove(account.Username)
	bs.session.Clear()

	bs.logger.Info("account closed", "username", account.Username)
	bs.audit.Record(account.Username, models.AuditActionAccountClosed, true, "", nil)
	bs.metrics.IncrementCounter("bank_operations_total", map[string]string{"operation": "close", "outcome": "success"})
	bs.metrics.SetGauge("bank_directory_accounts", float64(bs.directory.Len()))

	return nil
}

// ToggleSort flips the movement sort flag for the current session and
// returns the new state. The flag only affects how movements are read
// back, never how they are stored.
func (bs *BankService) ToggleSort() (bool, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return false, ErrNoActiveSession
	}
	return bs.session.ToggleSort(), nil
}

// SortEnabled reports the session's sort flag.
func (bs *BankService) SortEnabled() (bool, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return false, ErrNoActiveSession
	}
	return bs.session.Sorted(), nil
}

// CurrentMovements returns the current ledger, chronological by default
// or ascending by amount when sorted is true. Either way the result is
// a copy; the ledger's own order never changes.
func (bs *BankService) CurrentMovements(sorted bool) ([]models.Movement, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return nil, ErrNoActiveSession
	}

	ledger := bs.session.Account().Ledger
	if sorted {
		return ledger.SortedView(true), nil
	}
	return ledger.Snapshot(), nil
}

// CurrentSummary recomputes the summary figures from the current ledger.
func (bs *BankService) CurrentSummary() (*models.AccountSummary, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.session.IsActive() {
		return nil, ErrNoActiveSession
	}
	return bs.summaries.Summarize(bs.session.Account()), nil
}
