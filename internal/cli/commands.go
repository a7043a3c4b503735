package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/common"
)

// Execute collects the input op needs, runs it against the session and
// prints the session's message. The returned error is the session's
// rejection, if any.
func (a *App) Execute(ctx context.Context, op atm.Operation, args []string) error {
	req := atm.Request{Op: op}

	switch op {
	case atm.OpLogout:
		return a.Logout(ctx)

	case atm.OpDeposit, atm.OpWithdraw:
		amount, err := a.readAmount(op, args)
		if errors.Is(err, atm.ErrInvalidAmount) {
			fmt.Fprintln(a.out, "Invalid amount. Please enter a number with at most two decimal places.")
		}
		if err != nil {
			return err
		}
		req.Amount = amount

	case atm.OpChangePin:
		pin, err := getPin(a.reader, "Enter your new 4-digit PIN:", a.out)
		if err != nil {
			return err
		}
		req.NewPin = string(pin)
		common.WipeByteArray(pin)
	}

	msg, err := a.session.Do(ctx, req)
	fmt.Fprintln(a.out, msg)
	if err != nil {
		a.logger.Debug(ctx, "command rejected", "op", op.String(), "error", err.Error())
	}
	return err
}

// readAmount takes the amount from the first argument or prompts for it.
func (a *App) readAmount(op atm.Operation, args []string) (decimal.Decimal, error) {
	if len(args) > 0 {
		return atm.ParseAmount(args[0])
	}
	text, err := getSimpleText(a.reader, fmt.Sprintf("Enter amount to %s:", op), a.out)
	if err != nil {
		return decimal.Zero, err
	}
	return atm.ParseAmount(text)
}
