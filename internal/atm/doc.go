// Package atm implements the state machine of a single-account teller.
//
// The package has three parts:
//
//   - AuthGate holds the PIN hash and the failed-attempt counter and decides
//     whether a caller may reach the account (Unauthenticated, Authenticated,
//     LockedOut).
//   - Account holds the balance and the append-only transaction log and
//     exposes balance inquiry, deposit, withdrawal, PIN change and history.
//   - Session owns exactly one AuthGate and one Account and dispatches the
//     closed set of Operation values against them.
//
// Every operation returns a message that can be shown to the user verbatim.
// Rejections additionally return one of the sentinel errors declared in
// errors.go; match them with errors.Is. Rejected operations never change
// state and never appear in the log.
//
// Nothing in this package is safe for concurrent use. Each user session must
// own its own Session.
package atm
