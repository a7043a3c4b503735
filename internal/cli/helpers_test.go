package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/logging"
)

// stubTerminal makes GetPin treat stdin as a terminal (or not) for the
// duration of the test.
func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return terminal }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false)

	opts := atm.DefaultOptions()
	opts.PinHashCost = bcrypt.MinCost
	s, err := atm.NewSession(opts, logging.Discard())
	require.NoError(t, err)

	var out bytes.Buffer
	return &App{
		session: s,
		logger:  logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}, &out
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
