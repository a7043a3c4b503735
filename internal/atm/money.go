package atm

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// moneyPlaces is the number of fractional digits shown for every amount.
	moneyPlaces = 2
	// maxAmountDigits bounds the integer digits of any amount or balance
	// accepted from outside the package.
	maxAmountDigits = 15
	// minAmountExponent bounds the fractional digits inspected when checking
	// an amount built outside ParseAmount (config values, tests).
	minAmountExponent = -18
)

// amountPattern is plain decimal notation: optional minus sign, digits, and
// at most two fractional digits. Exponent forms such as "1e3" do not match.
var amountPattern = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

// ParseAmount converts user input such as "500" or "12.50" into an amount.
// Text that is not a plain decimal number, that carries more than two
// fractional digits, or whose integer part is longer than maxAmountDigits
// yields ErrInvalidAmount. The sign is not checked here.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !representable(d) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatMoney renders d as a dollar amount with exactly two fractional digits.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(moneyPlaces)
}

// representable reports whether d fits in whole cents within the digit
// bound. The exponent is checked before any rounding so that values such as
// 1e10000000 are rejected without being expanded.
func representable(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < minAmountExponent {
		return false
	}
	if int64(d.NumDigits())+exp > maxAmountDigits {
		return false
	}
	return d.Equal(d.Round(moneyPlaces))
}

// validAmount reports whether d can be moved in or out of an account.
func validAmount(d decimal.Decimal) bool {
	return d.IsPositive() && representable(d)
}
