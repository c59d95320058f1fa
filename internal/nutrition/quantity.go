package nutrition

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	Gram       Unit = "g"
	Millilitre Unit = "ml"
	Serving    Unit = "srv"
)

var (
	centi = decimal.New(1, -2)

	MinQuantity = decimal.New(1, -2)     // 0.01
	MaxQuantity = decimal.New(99999, -2) // 999.99
)

func (u Unit) IsValid() bool {
	switch u {
	case Gram, Millilitre, Serving:
		return true
	default:
		return false
	}
}

// ParseUnit is the strict variant, used where input crosses the API boundary.
func ParseUnit(code string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(code)))
	if !u.IsValid() {
		return "", newValidationError("data_measurement", "must be one of g, ml, srv")
	}
	return u, nil
}

// UnitFromCode never fails: unknown codes are treated as servings.
func UnitFromCode(code string) Unit {
	u, err := ParseUnit(code)
	if err != nil {
		return Serving
	}
	return u
}

// Normalize converts a user-entered quantity into the multiplier applied to the
// food's per-unit nutrient profile. Gram and millilitre profiles are stored per
// 100 units, so those quantities are scaled by 0.01.
func Normalize(raw decimal.Decimal, unit Unit) decimal.Decimal {
	switch unit {
	case Gram, Millilitre:
		return raw.Mul(centi)
	default:
		return raw
	}
}

func ValidateQuantity(raw decimal.Decimal) error {
	if raw.LessThan(MinQuantity) {
		return newValidationError("quantity", "must be at least 0.01")
	}
	if raw.GreaterThan(MaxQuantity) {
		return newValidationError("quantity", "must be at most 999.99")
	}
	return nil
}
