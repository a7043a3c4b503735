package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/atm/internal/atm"
)

const helpText = "Available commands: balance, deposit [amount], withdraw [amount], pin, history, logout, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Execute(ctx context.Context, op atm.Operation, args []string) error
}

// runREPL reads commands from reader until logout, exit, or end of input.
//
// The first word of each line names the command. help, exit and quit are
// handled here; every other word must name an atm.Operation and is passed
// to a.Execute with the remaining words as arguments. Unknown commands are
// reported back to the user. Errors from Execute are not fatal: the
// session has already produced the message the user needs to see.
//
// runREPL reports true after a logout, so the caller can prompt for the PIN
// again, and false when the user wants to leave.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) bool {
	for {
		if ctx.Err() != nil {
			return false
		}

		fmt.Fprintf(w, "atm %s> ", statusFn())
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return false
			}
			continue
		}

		cmd, args := parts[0], parts[1:]
		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return false
		default:
			op, ok := atm.ParseOperation(cmd)
			if !ok {
				fmt.Fprintln(w, "Unknown command:", cmd)
				break
			}
			_ = a.Execute(ctx, op, args)
			if op == atm.OpLogout {
				return true
			}
		}

		if err != nil {
			return false
		}
	}
}
