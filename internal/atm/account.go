package atm

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInitialBalance is the balance of a new account when none is configured.
var DefaultInitialBalance = decimal.NewFromInt(1000)

const noTransactions = "No transactions available."

// PinSetter stores a new PIN. *AuthGate implements it.
type PinSetter interface {
	SetPin(pin string) error
}

// Account holds the balance and the transaction log of the session.
//
// Methods return a user-facing message together with an error. On rejection
// the message explains the failure and the error is one of the package
// sentinels; the balance, PIN and log are left untouched.
type Account struct {
	balance decimal.Decimal
	log     []LogEntry
	pins    PinSetter
	now     func() time.Time
}

// NewAccount opens an account with the given initial balance. PIN changes
// are forwarded to pins.
func NewAccount(initial decimal.Decimal, pins PinSetter) (*Account, error) {
	if initial.IsNegative() || !representable(initial) {
		return nil, ErrInvalidAmount
	}
	return &Account{balance: initial, pins: pins, now: time.Now}, nil
}

// CheckBalance reports the current balance. The inquiry itself is logged.
func (a *Account) CheckBalance() string {
	a.record(EntryBalanceCheck, decimal.Zero)
	return "Your current balance is: " + FormatMoney(a.balance)
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) (string, error) {
	if !validAmount(amount) {
		return "Invalid deposit amount.", ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(EntryDeposit, amount)
	return FormatMoney(amount) + " deposited successfully.", nil
}

// Withdraw takes a positive amount not exceeding the balance.
func (a *Account) Withdraw(amount decimal.Decimal) (string, error) {
	const rejected = "Insufficient funds or invalid amount."
	if !validAmount(amount) {
		return rejected, ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return rejected, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.record(EntryWithdrawal, amount)
	return FormatMoney(amount) + " withdrawn successfully.", nil
}

// ChangePin validates pin and hands it to the PinSetter. The log records
// that the PIN changed but not its value.
func (a *Account) ChangePin(pin string) (string, error) {
	const rejected = "Invalid PIN format. Please enter a 4-digit number."
	if !ValidPin(pin) {
		return rejected, ErrInvalidPinFormat
	}
	if err := a.pins.SetPin(pin); err != nil {
		return "PIN could not be changed.", err
	}
	a.record(EntryPinChange, decimal.Zero)
	return "PIN changed successfully.", nil
}

// ShowHistory renders the log oldest first, one "- " prefixed line per entry.
func (a *Account) ShowHistory() string {
	if len(a.log) == 0 {
		return noTransactions
	}
	lines := make([]string, 0, len(a.log))
	for _, e := range a.log {
		lines = append(lines, "- "+e.String())
	}
	return strings.Join(lines, "\n")
}

// History returns a copy of the log, oldest first.
func (a *Account) History() []LogEntry {
	out := make([]LogEntry, len(a.log))
	copy(out, a.log)
	return out
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) record(kind EntryKind, amount decimal.Decimal) {
	a.log = append(a.log, LogEntry{
		Seq:     len(a.log) + 1,
		Kind:    kind,
		Amount:  amount,
		Balance: a.balance,
		At:      a.now(),
	})
}
