package atm

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "500", want: "500.00"},
		{in: " 12.5 ", want: "12.50"},
		{in: "0.01", want: "0.01"},
		{in: "-3", want: "-3.00"},
		{in: "1.001", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1,000", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "1E6", wantErr: true},
		{in: "1e10000000", wantErr: true},
		{in: "1e-2", wantErr: true},
		{in: "999999999999999.99", want: "999999999999999.99"},
		{in: "1000000000000000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1500.00", FormatMoney(dec("1500")))
	assert.Equal(t, "$0.50", FormatMoney(dec("0.5")))
	assert.Equal(t, "$0.00", FormatMoney(dec("0")))
}

func TestRepresentable_HugeExponentsRejectedQuickly(t *testing.T) {
	start := time.Now()

	assert.False(t, representable(decimal.New(1, 10000000)))
	assert.False(t, representable(decimal.New(1, 1000000000)))
	assert.False(t, representable(decimal.New(1, -10000000)))
	assert.False(t, representable(decimal.New(1, maxAmountDigits)))
	assert.True(t, representable(decimal.New(1, maxAmountDigits-1)))
	assert.True(t, representable(decimal.New(150, -2)))

	assert.Less(t, time.Since(start), time.Second)
}
