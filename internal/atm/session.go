package atm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/atm/internal/cryptox"
	"github.com/dmitrijs2005/atm/internal/logging"
)

// DefaultPin is the PIN of a new session when none is configured.
const DefaultPin = "1234"

// Operation is the closed set of requests a Session accepts once
// authenticated.
type Operation int

const (
	OpBalanceInquiry Operation = iota + 1
	OpWithdraw
	OpDeposit
	OpChangePin
	OpHistory
	OpLogout
)

var operationNames = map[Operation]string{
	OpBalanceInquiry: "balance",
	OpWithdraw:       "withdraw",
	OpDeposit:        "deposit",
	OpChangePin:      "pin",
	OpHistory:        "history",
	OpLogout:         "logout",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation maps a command name (as returned by Operation.String) to
// its Operation. Matching ignores case and surrounding space.
func ParseOperation(s string) (Operation, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, name := range operationNames {
		if name == s {
			return op, true
		}
	}
	return 0, false
}

// Request is one operation with its argument. Amount is used by OpDeposit
// and OpWithdraw, NewPin by OpChangePin.
type Request struct {
	Op     Operation
	Amount decimal.Decimal
	NewPin string
}

// Options configures a new Session.
type Options struct {
	InitialBalance decimal.Decimal
	InitialPin     string
	PinHashCost    int
}

func DefaultOptions() Options {
	return Options{
		InitialBalance: DefaultInitialBalance,
		InitialPin:     DefaultPin,
		PinHashCost:    cryptox.DefaultPinCost,
	}
}

// Session owns the gate and the account of one user session. It is created
// at session start and discarded with Close.
type Session struct {
	id      string
	gate    *AuthGate
	account *Account
	logger  logging.Logger
}

// NewSession builds a Session in the Unauthenticated state.
func NewSession(opts Options, logger logging.Logger) (*Session, error) {
	gate, err := NewAuthGate(opts.InitialPin, opts.PinHashCost)
	if err != nil {
		return nil, fmt.Errorf("initial pin: %w", err)
	}
	account, err := NewAccount(opts.InitialBalance, gate)
	if err != nil {
		return nil, fmt.Errorf("initial balance: %w", err)
	}

	id := uuid.NewString()
	return &Session{
		id:      id,
		gate:    gate,
		account: account,
		logger:  logger.With("session_id", id),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

// State reports the authentication state. A closed session reports
// StateLockedOut.
func (s *Session) State() AuthState {
	if s.closed() {
		return StateLockedOut
	}
	return s.gate.State()
}

// Login verifies pin against the gate.
func (s *Session) Login(ctx context.Context, pin string) AuthResult {
	if s.closed() {
		return AuthResult{Status: AuthLockedOut}
	}

	res := s.gate.Verify(pin)
	switch res.Status {
	case AuthAuthenticated:
		s.logger.Info(ctx, "authentication succeeded")
	case AuthRejected:
		s.logger.Warn(ctx, "authentication rejected", "attempts_remaining", res.AttemptsRemaining)
	case AuthLockedOut:
		s.logger.Warn(ctx, "session locked out", "failed_attempts", s.gate.FailedAttempts())
	}
	return res
}

// Logout ends the authenticated part of the session. The account and its
// log are kept; a later Login resumes them.
func (s *Session) Logout(ctx context.Context) string {
	if !s.closed() {
		s.gate.Logout()
		s.logger.Info(ctx, "logged out")
	}
	return "You have been logged out."
}

// Do runs req against the account. The gate must be in the Authenticated
// state; otherwise ErrNotAuthenticated (or ErrLockedOut) is returned and
// nothing runs.
func (s *Session) Do(ctx context.Context, req Request) (string, error) {
	if s.closed() {
		return "This session has ended.", ErrSessionClosed
	}
	switch s.gate.State() {
	case StateLockedOut:
		return AuthResult{Status: AuthLockedOut}.Message(), ErrLockedOut
	case StateUnauthenticated:
		return "Please enter your PIN to continue.", ErrNotAuthenticated
	}

	var (
		msg string
		err error
	)
	switch req.Op {
	case OpBalanceInquiry:
		msg = s.account.CheckBalance()
	case OpDeposit:
		msg, err = s.account.Deposit(req.Amount)
	case OpWithdraw:
		msg, err = s.account.Withdraw(req.Amount)
	case OpChangePin:
		msg, err = s.account.ChangePin(req.NewPin)
	case OpHistory:
		msg = s.account.ShowHistory()
	case OpLogout:
		return s.Logout(ctx), nil
	default:
		return "Unknown operation.", fmt.Errorf("operation %d: %w", int(req.Op), ErrUnknownOperation)
	}

	if err != nil {
		if rejected(err) {
			s.logger.Warn(ctx, "operation rejected", "op", req.Op.String(), "reason", err.Error())
		} else {
			s.logger.Error(ctx, "operation failed", "op", req.Op.String(), "error", err.Error())
		}
		return msg, err
	}
	s.logger.Info(ctx, "operation completed", "op", req.Op.String(), "balance", s.account.Balance().StringFixed(moneyPlaces))
	return msg, nil
}

// History returns a copy of the transaction log.
func (s *Session) History() []LogEntry {
	if s.closed() {
		return nil
	}
	return s.account.History()
}

// Close discards the account and the gate. Every later call reports
// ErrSessionClosed or the locked-out state.
func (s *Session) Close(ctx context.Context) {
	if s.closed() {
		return
	}
	s.logger.Info(ctx, "session closed", "entries", len(s.account.log))
	s.account = nil
	s.gate = nil
}

// rejected reports whether err is a refusal of the user's input rather than
// an internal failure.
func rejected(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInvalidPinFormat)
}

func (s *Session) closed() bool {
	return s.gate == nil
}
