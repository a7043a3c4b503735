// Package cli provides the interactive teller terminal.
//
// It wires configuration, logging and one atm.Session, then runs a
// read-eval-print loop on stdin/stdout. Typical flow: prompt for the PIN
// (hidden when stdin is a terminal), run menu commands until logout, and
// return to the PIN prompt. Three wrong PINs end the program.
//
// Commands once authenticated:
//   - balance           : show the balance
//   - deposit [amount]  : deposit cash (prompts when amount is omitted)
//   - withdraw [amount] : withdraw cash
//   - pin               : change the PIN (hidden input)
//   - history           : show the transaction history
//   - logout            : log out and return to the PIN prompt
//   - help, exit | quit
//
// The package holds no account rules; every message it prints comes from
// the session. Start it with App.Run(ctx), which blocks until the user
// leaves or is locked out.
package cli
