package config

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/atm/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish an absent key from a zero value.
type JsonConfig struct {
	InitialBalance *decimal.Decimal `json:"initial_balance"`
	InitialPin     *string          `json:"initial_pin"`
	PinHashCost    *int             `json:"pin_hash_cost"`
	LogLevel       *string          `json:"log_level"`
	LogFile        *string          `json:"log_file"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c or -config flag. Without either flag it does nothing.
//
// It panics on read or unmarshal errors; callers that want to recover
// should do so explicitly.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.InitialBalance != nil {
		cfg.InitialBalance = *jc.InitialBalance
	}
	if jc.InitialPin != nil {
		cfg.InitialPin = *jc.InitialPin
	}
	if jc.PinHashCost != nil {
		cfg.PinHashCost = *jc.PinHashCost
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
