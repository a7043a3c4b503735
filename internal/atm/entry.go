package atm

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the operation recorded by a LogEntry.
type EntryKind int

const (
	EntryBalanceCheck EntryKind = iota + 1
	EntryDeposit
	EntryWithdrawal
	EntryPinChange
)

func (k EntryKind) String() string {
	switch k {
	case EntryBalanceCheck:
		return "balance_check"
	case EntryDeposit:
		return "deposit"
	case EntryWithdrawal:
		return "withdrawal"
	case EntryPinChange:
		return "pin_change"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// LogEntry is one immutable record of a completed operation.
//
// Seq starts at 1 and grows by one per entry; it alone defines the order of
// the log. Amount is zero for balance checks and PIN changes. Balance is the
// account balance after the operation.
type LogEntry struct {
	Seq     int
	Kind    EntryKind
	Amount  decimal.Decimal
	Balance decimal.Decimal
	At      time.Time
}

// String renders the entry as an audit line.
func (e LogEntry) String() string {
	switch e.Kind {
	case EntryBalanceCheck:
		return "Checked balance: " + FormatMoney(e.Balance)
	case EntryDeposit:
		return "Deposited: " + FormatMoney(e.Amount)
	case EntryWithdrawal:
		return "Withdrew: " + FormatMoney(e.Amount)
	case EntryPinChange:
		return "Changed PIN"
	default:
		return e.Kind.String()
	}
}
