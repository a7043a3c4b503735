// Package config loads runtime configuration for the teller terminal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b decimal  initial account balance
//	-p string   initial 4-digit PIN
//	-k int      bcrypt cost used for PIN hashes
//	-l string   log level (debug, info, warn, error)
//	-o string   log file; empty means stderr
//
// # JSON schema
//
// Every key is optional; absent keys keep the value from the defaults.
// The balance may be a JSON number or a string:
//
//	{
//	  "initial_balance": "1000.00",
//	  "initial_pin": "1234",
//	  "pin_hash_cost": 10,
//	  "log_level": "warn",
//	  "log_file": "atm.log"
//	}
//
// The maximum number of PIN attempts (3) and the PIN length (4) are fixed
// and cannot be configured.
package config
