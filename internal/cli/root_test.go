package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/atm/internal/atm"
)

func TestRoot_FullSession(t *testing.T) {
	a, out := newTestApp(t, lines(
		"0000",
		"1234",
		"balance",
		"deposit 500",
		"withdraw",
		"2000",
		"pin",
		"12a4",
		"pin",
		"5678",
		"history",
		"logout",
		"5678",
		"balance",
		"exit",
	))

	a.Root(context.Background())

	got := out.String()
	want := []string{
		"Incorrect PIN. Attempt 1/3",
		"Authentication successful!",
		"Your current balance is: $1000.00",
		"$500.00 deposited successfully.",
		"Insufficient funds or invalid amount.",
		"Invalid PIN format. Please enter a 4-digit number.",
		"PIN changed successfully.",
		"- Checked balance: $1000.00\n- Deposited: $500.00\n- Changed PIN",
		"You have been logged out.",
		"Your current balance is: $1500.00",
		"Bye!",
	}
	pos := 0
	for _, w := range want {
		i := strings.Index(got[pos:], w)
		if i < 0 {
			t.Fatalf("missing %q after offset %d in output:\n%s", w, pos, got)
		}
		pos += i + len(w)
	}
	assert.Equal(t, 2, strings.Count(got, "Authentication successful!"))
}

func TestRoot_LockoutEnds(t *testing.T) {
	a, out := newTestApp(t, lines("1111", "2222", "3333", "1234", "balance"))

	a.Root(context.Background())

	assert.Contains(t, out.String(), "Too many incorrect attempts. Exiting.")
	assert.NotContains(t, out.String(), "Your current balance")
	assert.Equal(t, atm.StateLockedOut, a.session.State())
}

func TestRoot_EOFEnds(t *testing.T) {
	a, out := newTestApp(t, lines("1234", "balance"))

	a.Root(context.Background())

	assert.Contains(t, out.String(), "Your current balance is: $1000.00")
}
