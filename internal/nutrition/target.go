package nutrition

import (
	"github.com/shopspring/decimal"
)

var (
	MaxTargetWeight = decimal.NewFromInt(1000)
	MaxPerKg        = decimal.NewFromInt(10)

	saturatesShareOfFat = decimal.RequireFromString("0.35")
	sugarsPerKcal       = decimal.RequireFromString("0.03")
	fixedFibre          = decimal.NewFromInt(30)
	fixedSalt           = decimal.NewFromInt(6)
)

type TargetInput struct {
	Weight            decimal.Decimal `json:"weight"`
	ProteinPerKg      decimal.Decimal `json:"protein_per_kg"`
	CarbohydratePerKg decimal.Decimal `json:"carbohydrate_per_kg"`
	FatPerKg          decimal.Decimal `json:"fat_per_kg"`
}

func (in TargetInput) Validate() error {
	if in.Weight.IsNegative() {
		return newValidationError("weight", "must be a positive number")
	}
	if in.Weight.GreaterThanOrEqual(MaxTargetWeight) {
		return newValidationError("weight", "must be less than 1000.00")
	}

	perKg := []struct {
		field string
		value decimal.Decimal
	}{
		{"protein_per_kg", in.ProteinPerKg},
		{"carbohydrate_per_kg", in.CarbohydratePerKg},
		{"fat_per_kg", in.FatPerKg},
	}
	for _, p := range perKg {
		if p.value.IsNegative() {
			return newValidationError(p.field, "must be a positive number")
		}
		if p.value.GreaterThanOrEqual(MaxPerKg) {
			return newValidationError(p.field, "must be less than 10.00")
		}
	}
	return nil
}

// Target is a planned daily intake. All fields are fixed at planning time.
type Target struct {
	Weight       decimal.Decimal `json:"weight"`
	Energy       int             `json:"energy"`
	Protein      decimal.Decimal `json:"protein"`
	Carbohydrate decimal.Decimal `json:"carbohydrate"`
	Fat          decimal.Decimal `json:"fat"`
	Saturates    decimal.Decimal `json:"saturates"`
	Sugars       decimal.Decimal `json:"sugars"`
	Fibre        decimal.Decimal `json:"fibre"`
	Salt         decimal.Decimal `json:"salt"`
}

func PlanTarget(in TargetInput) (Target, error) {
	if err := in.Validate(); err != nil {
		return Target{}, err
	}

	protein := in.Weight.Mul(in.ProteinPerKg)
	carbohydrate := in.Weight.Mul(in.CarbohydratePerKg)
	fat := in.Weight.Mul(in.FatPerKg)
	energy := protein.Mul(kcalPerGramProtein).
		Add(carbohydrate.Mul(kcalPerGramCarbohydrate)).
		Add(fat.Mul(kcalPerGramFat)).
		RoundBank(0)

	return Target{
		Weight:       in.Weight,
		Energy:       int(energy.IntPart()),
		Protein:      protein,
		Carbohydrate: carbohydrate,
		Fat:          fat,
		Saturates:    fat.Mul(saturatesShareOfFat),
		Sugars:       energy.Mul(sugarsPerKcal),
		Fibre:        fixedFibre,
		Salt:         fixedSalt,
	}, nil
}

func (t Target) Nutrients() Nutrients {
	return Nutrients{
		Energy:       decimal.NewFromInt(int64(t.Energy)),
		Protein:      t.Protein,
		Carbohydrate: t.Carbohydrate,
		Fat:          t.Fat,
		Saturates:    t.Saturates,
		Sugars:       t.Sugars,
		Fibre:        t.Fibre,
		Salt:         t.Salt,
	}
}

// Ratios returns the macro split of the target and its values per kg of the target weight.
func (t Target) Ratios() (Macros, PerKg) {
	n := t.Nutrients()
	return MacroSplit(n), RatiosPerKg(n, valid(t.Weight))
}

// AsDayTotal lets targets go through the same week aggregations as the diet log,
// with the target weight standing in for the latest body weight.
func (t Target) AsDayTotal(day DayTotal) DayTotal {
	n := t.Nutrients()
	day.Nutrients = n
	day.Entries = 1
	day.Macros, day.PerKg = t.Ratios()
	day.LatestWeight = valid(t.Weight)
	return day
}
