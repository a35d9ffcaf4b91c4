package ofx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an OFX decimal literal into an exact decimal. Both "."
// and "," are tolerated as the fractional separator: when both appear the
// rightmost one is the decimal point and the other is a grouping character,
// when only "," appears the rightmost comma is the decimal point and any
// earlier ones are grouping characters. The literal tokens "null"
// and "-null", seen on zero-valued placeholder transactions, parse to zero.
func ParseAmount(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, fmt.Errorf("error - amount %q can not be parsed", value)
	}
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "-null") {
		return decimal.Zero, nil
	}

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot != -1 && comma != -1 && comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot != -1 && comma != -1:
		s = strings.ReplaceAll(s, ",", "")
	case comma != -1:
		s = strings.ReplaceAll(s[:comma], ",", "") + "." + s[comma+1:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error - amount %q can not be parsed", value)
	}
	return d, nil
}
