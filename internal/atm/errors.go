package atm

import "errors"

var (
	// Amount and balance errors.
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// PIN errors.
	ErrInvalidPinFormat     = errors.New("invalid pin format")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrLockedOut            = errors.New("locked out")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionClosed    = errors.New("session closed")
	ErrUnknownOperation = errors.New("unknown operation")
)
