package cli

import (
	"context"
	"fmt"
)

// Root alternates between the PIN prompt and the menu loop. It returns when
// the user exits, input ends, the context is cancelled, or the session is
// locked out.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "ATM Machine Simulation (type 'help' for commands)")

	for ctx.Err() == nil {
		if err := a.Login(ctx); err != nil {
			return
		}
		if !runREPL(ctx, a, a.getStatus, a.reader, a.out) {
			return
		}
	}
}
