package config

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/cryptox"
)

// Config holds runtime settings for the teller terminal.
//
// Fields:
//   - InitialBalance: balance of the account when the session starts.
//   - InitialPin: PIN of the session until the user changes it.
//   - PinHashCost: bcrypt cost for PIN hashes.
//   - LogLevel / LogFile: diagnostic log settings; the log never carries PINs.
type Config struct {
	InitialBalance decimal.Decimal
	InitialPin     string
	PinHashCost    int
	LogLevel       string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.InitialBalance = atm.DefaultInitialBalance
	c.InitialPin = atm.DefaultPin
	c.PinHashCost = cryptox.DefaultPinCost
	c.LogLevel = "warn"
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// SessionOptions converts the configuration into options for atm.NewSession.
func (c *Config) SessionOptions() atm.Options {
	return atm.Options{
		InitialBalance: c.InitialBalance,
		InitialPin:     c.InitialPin,
		PinHashCost:    c.PinHashCost,
	}
}
