package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/common"
)

// getSimpleText and getPin are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPin        = GetPin
)

// Login prompts for the PIN until the session authenticates or locks out.
//
// It returns nil once authenticated, atm.ErrLockedOut after the final wrong
// PIN, or the input error that interrupted the prompt. The PIN buffer is
// wiped after every attempt.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out, "Please enter your PIN to continue:")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		pin, err := getPin(a.reader, "PIN:", a.out)
		if err != nil {
			return err
		}
		res := a.session.Login(ctx, string(pin))
		common.WipeByteArray(pin)

		fmt.Fprintln(a.out, res.Message())
		switch res.Status {
		case atm.AuthAuthenticated:
			return nil
		case atm.AuthLockedOut:
			return res.Err()
		}
	}
}

// Logout ends the authenticated part of the session.
func (a *App) Logout(ctx context.Context) error {
	fmt.Fprintln(a.out, a.session.Logout(ctx))
	return nil
}
