package finboard

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percents, 12.5 is 12.5%.
type Percent float64

// percentOf returns part/base in percents, or 0 when base is zero.
func percentOf(part, base decimal.Decimal) Percent {
	if base.IsZero() {
		return 0
	}
	return Percent(part.Div(base).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
