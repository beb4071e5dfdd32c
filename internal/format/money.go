// Package format turns raw numeric and time values into display strings.
// All functions are pure: the same input always yields the same output.
package format

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	trillion = decimal.New(1, 12)
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
)

// Currency renders v as US dollars with two decimals and thousands separators,
// e.g. "$1,234.56" or "-$0.50".
func Currency(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	fixed := v.Abs().StringFixed(2)
	if fixed == "0.00" {
		sign = ""
	}

	intPart, frac := fixed, ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		intPart, frac = fixed[:dot], fixed[dot:]
	}

	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return sign + "$" + fixed
	}
	return sign + "$" + humanize.BigComma(n) + frac
}

// Compact renders large values with a T/B/M suffix and two decimals,
// falling back to Currency below one million.
func Compact(v decimal.Decimal) string {
	switch {
	case v.GreaterThanOrEqual(trillion):
		return "$" + v.Div(trillion).StringFixed(2) + "T"
	case v.GreaterThanOrEqual(billion):
		return "$" + v.Div(billion).StringFixed(2) + "B"
	case v.GreaterThanOrEqual(million):
		return "$" + v.Div(million).StringFixed(2) + "M"
	default:
		return Currency(v)
	}
}

// Percent renders a ratio already expressed in percent, e.g. "+2.04%".
func Percent(v decimal.Decimal) string {
	s := v.StringFixed(2)
	if v.IsPositive() && s != "0.00" {
		return "+" + s + "%"
	}
	return s + "%"
}
