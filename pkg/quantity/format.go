package quantity

import (
	"strconv"
	"strings"
)

// displayDigits is the significant-digit precision used for display.
// Rounding happens only here; conversion arithmetic keeps full float64
// precision.
const displayDigits = 6

// formatAmount renders an amount with up to displayDigits significant
// digits and insignificant trailing zeros removed, so whole numbers print
// without decimal noise ("250", "1.4881").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'g', displayDigits, 64)

	mantissa, exponent, hasExponent := strings.Cut(s, "e")
	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimRight(mantissa, ".")
	}
	if hasExponent {
		return mantissa + "e" + exponent
	}
	return mantissa
}

// String renders the quantity as "<amount> <symbol> [<ingredient>]".
// Units flagged SymbolFirst render the symbol before the amount
// ("thermostat 6").
func (q Quantity) String() string {
	var b strings.Builder
	if q.Unit.SymbolFirst {
		b.WriteString(q.Unit.Symbol)
		b.WriteByte(' ')
		b.WriteString(formatAmount(q.Amount))
	} else {
		b.WriteString(formatAmount(q.Amount))
		b.WriteByte(' ')
		b.WriteString(q.Unit.Symbol)
	}
	if q.Ingredient != nil {
		b.WriteByte(' ')
		b.WriteString(q.Ingredient.Name)
	}
	return b.String()
}
