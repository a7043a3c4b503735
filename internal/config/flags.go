package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b decimal  initial balance (plain notation, at most two decimals)
//	-p string   initial PIN
//	-k int      bcrypt cost for PIN hashes
//	-l string   log level
//	-o string   log file
//
// Only these flags are looked at; os.Args is filtered with flagx.FilterArgs
// so that -c/-config and unknown flags do not break parsing. Invalid values
// panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-p", "-k", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.Func("b", "initial account balance", func(s string) error {
		d, err := atm.ParseAmount(s)
		if err != nil {
			return err
		}
		cfg.InitialBalance = d
		return nil
	})
	fs.StringVar(&cfg.InitialPin, "p", cfg.InitialPin, "initial 4-digit PIN")
	fs.IntVar(&cfg.PinHashCost, "k", cfg.PinHashCost, "bcrypt cost for PIN hashes")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "o", cfg.LogFile, "log file (default stderr)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
