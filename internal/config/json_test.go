package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/logging"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"initial_balance": 42.5,
		"initial_pin":     "0007",
		"pin_hash_cost":   5,
		"log_level":       "debug",
		"log_file":        "atm.log",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"initial_pin": "4321",
	})

	t.Run("loads every key", func(t *testing.T) {
		os.Args = []string{"atm", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "42.50", cfg.InitialBalance.StringFixed(2))
		assert.Equal(t, "0007", cfg.InitialPin)
		assert.Equal(t, 5, cfg.PinHashCost)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "atm.log", cfg.LogFile)
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		os.Args = []string{"atm", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "4321", cfg.InitialPin)
		assert.Equal(t, "1000.00", cfg.InitialBalance.StringFixed(2))
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"atm"}

		cfg := &Config{InitialPin: "5555", LogLevel: "error"}
		parseJson(cfg)

		assert.Equal(t, "5555", cfg.InitialPin)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"atm", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("exponent balance is loaded but refused by the session", func(t *testing.T) {
		huge := filepath.Join(dir, "huge.json")
		require.NoError(t, os.WriteFile(huge, []byte(`{"initial_balance": 1e10000000}`), 0o600))

		os.Args = []string{"atm", "-c", huge}

		cfg := &Config{}
		cfg.LoadDefaults()
		cfg.PinHashCost = bcrypt.MinCost
		parseJson(cfg)

		_, err := atm.NewSession(cfg.SessionOptions(), logging.Discard())
		assert.ErrorIs(t, err, atm.ErrInvalidAmount)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"atm", "-c", filepath.Join(dir, "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
