package service

import (
	"strconv"
	"strings"

	"github.com/younivent/platform/internal/core/domain"
)

// FormatAmount renders a monetary value according to cs. With the default
// settings FormatAmount(DefaultCurrency, 0) yields "$0.00 USD".
func FormatAmount(cs domain.CurrencySettings, amount float64) string {
	sep := ""
	if cs.Separator == domain.SeparatorSpace {
		sep = " "
	}
	n := groupThousands(strconv.FormatFloat(amount, 'f', cs.Decimals, 64))
	return cs.Symbol + sep + n + " " + cs.Code
}

// groupThousands inserts comma separators into the integer part of a
// formatted number, preserving sign and decimals.
func groupThousands(n string) string {
	sign := ""
	if strings.HasPrefix(n, "-") {
		sign, n = "-", n[1:]
	}
	intPart, frac := n, ""
	if i := strings.IndexByte(n, '.'); i >= 0 {
		intPart, frac = n[:i], n[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
