package fees

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// subunitScale is the number of minor units per major unit. Every currency
// Paystack charges in uses a two-decimal minor unit.
var subunitScale = decimal.NewFromInt(100)

// ToSubunit converts a major-unit amount (naira, cedi, rand) to the
// currency's minor unit. Accepted inputs are int, int64, decimal.Decimal
// and float64; anything else is rejected.
func ToSubunit(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t) * 100, nil
	case int64:
		return t * 100, nil
	case decimal.Decimal:
		return t.Mul(subunitScale).Round(0).IntPart(), nil
	case float64:
		return decimal.NewFromFloat(t).Mul(subunitScale).Round(0).IntPart(), nil
	default:
		return 0, fmt.Errorf("fees: cannot convert %T to a subunit amount", v)
	}
}

// ToBaseUnit converts a minor-unit amount to the major unit as a fixed-point
// decimal. Accepted inputs are int, int64 and decimal.Decimal; floats are
// rejected because minor-unit amounts are exact integers.
func ToBaseUnit(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case int:
		return decimal.NewFromInt(int64(t)).Div(subunitScale), nil
	case int64:
		return decimal.NewFromInt(t).Div(subunitScale), nil
	case decimal.Decimal:
		return t.Div(subunitScale), nil
	default:
		return decimal.Zero, fmt.Errorf("fees: cannot convert %T to a base unit amount", v)
	}
}
