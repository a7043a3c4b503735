package atm

import (
	"fmt"

	"github.com/dmitrijs2005/atm/internal/cryptox"
)

const (
	// MaxPinAttempts is the number of consecutive wrong PINs that lock the
	// session out.
	MaxPinAttempts = 3
	// PinLength is the exact number of decimal digits in a PIN.
	PinLength = 4
)

// AuthState is the authentication state of a gate.
type AuthState int

const (
	StateUnauthenticated AuthState = iota
	StateAuthenticated
	StateLockedOut
)

func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateLockedOut:
		return "locked_out"
	default:
		return fmt.Sprintf("AuthState(%d)", int(s))
	}
}

// AuthStatus is the outcome of a single Verify call.
type AuthStatus int

const (
	AuthAuthenticated AuthStatus = iota + 1
	AuthRejected
	AuthLockedOut
)

// AuthResult is returned by Verify. AttemptsRemaining is only meaningful for
// AuthRejected. LastAttempt is set on the AuthLockedOut result of the
// mismatch that used up the final attempt.
type AuthResult struct {
	Status            AuthStatus
	AttemptsRemaining int
	LastAttempt       bool
}

// Err maps the result onto the error taxonomy: nil on success,
// ErrAuthenticationFailed or ErrLockedOut otherwise.
func (r AuthResult) Err() error {
	switch r.Status {
	case AuthAuthenticated:
		return nil
	case AuthLockedOut:
		return ErrLockedOut
	default:
		return ErrAuthenticationFailed
	}
}

// Message is the text shown to the user for this result.
func (r AuthResult) Message() string {
	switch r.Status {
	case AuthAuthenticated:
		return "Authentication successful!"
	case AuthLockedOut:
		if r.LastAttempt {
			return attemptMessage(MaxPinAttempts) + "\n" + lockedOutMessage
		}
		return lockedOutMessage
	default:
		return attemptMessage(MaxPinAttempts - r.AttemptsRemaining)
	}
}

const lockedOutMessage = "Too many incorrect attempts. Exiting."

func attemptMessage(n int) string {
	return fmt.Sprintf("Incorrect PIN. Attempt %d/%d", n, MaxPinAttempts)
}

// AuthGate guards access to an Account with a PIN and attempt limiting.
// It keeps only a hash of the PIN.
type AuthGate struct {
	pinHash        []byte
	cost           int
	failedAttempts int
	state          AuthState
}

// NewAuthGate creates a gate in the Unauthenticated state for the given PIN.
// cost is the bcrypt cost used for this and every later PIN hash.
func NewAuthGate(pin string, cost int) (*AuthGate, error) {
	g := &AuthGate{cost: cost}
	if err := g.SetPin(pin); err != nil {
		return nil, err
	}
	return g, nil
}

// Verify compares candidate with the stored PIN.
//
// A match authenticates the gate and resets the failure counter. A mismatch
// increments the counter and drops any existing authentication; the third
// consecutive mismatch locks the gate out. Once locked out, Verify rejects
// every call without looking at the candidate.
func (g *AuthGate) Verify(candidate string) AuthResult {
	if g.state == StateLockedOut {
		return AuthResult{Status: AuthLockedOut}
	}

	if cryptox.ComparePin(g.pinHash, []byte(candidate)) {
		g.state = StateAuthenticated
		g.failedAttempts = 0
		return AuthResult{Status: AuthAuthenticated}
	}

	g.failedAttempts++
	if g.failedAttempts >= MaxPinAttempts {
		g.state = StateLockedOut
		return AuthResult{Status: AuthLockedOut, LastAttempt: true}
	}

	g.state = StateUnauthenticated
	return AuthResult{Status: AuthRejected, AttemptsRemaining: MaxPinAttempts - g.failedAttempts}
}

// SetPin replaces the stored PIN. The state and counter are left alone.
func (g *AuthGate) SetPin(pin string) error {
	if !ValidPin(pin) {
		return ErrInvalidPinFormat
	}
	hash, err := cryptox.HashPin([]byte(pin), g.cost)
	if err != nil {
		return fmt.Errorf("set pin: %w", err)
	}
	g.pinHash = hash
	return nil
}

// Logout returns an unlocked gate to Unauthenticated and clears the counter.
// A locked-out gate stays locked out.
func (g *AuthGate) Logout() {
	if g.state == StateLockedOut {
		return
	}
	g.state = StateUnauthenticated
	g.failedAttempts = 0
}

func (g *AuthGate) State() AuthState {
	return g.state
}

func (g *AuthGate) FailedAttempts() int {
	return g.failedAttempts
}

// ValidPin reports whether pin consists of exactly PinLength ASCII digits.
func ValidPin(pin string) bool {
	if len(pin) != PinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
