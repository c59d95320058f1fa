package nutrition

import (
	"github.com/shopspring/decimal"
)

var (
	kcalPerGramProtein      = decimal.NewFromInt(4)
	kcalPerGramCarbohydrate = decimal.NewFromInt(4)
	kcalPerGramFat          = decimal.NewFromInt(9)
	hundred                 = decimal.NewFromInt(100)
)

// NutrientProfile holds per-unit values of a food. Energy is in kcal, the rest in grams.
type NutrientProfile struct {
	Energy       int             `json:"energy"`
	Protein      decimal.Decimal `json:"protein"`
	Carbohydrate decimal.Decimal `json:"carbohydrate"`
	Fat          decimal.Decimal `json:"fat"`
	Saturates    decimal.Decimal `json:"saturates"`
	Sugars       decimal.Decimal `json:"sugars"`
	Fibre        decimal.Decimal `json:"fibre"`
	Salt         decimal.Decimal `json:"salt"`
}

func (p NutrientProfile) Validate() error {
	if p.Energy < 0 {
		return newValidationError("energy", "must be a positive number")
	}
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"protein", p.Protein},
		{"carbohydrate", p.Carbohydrate},
		{"fat", p.Fat},
		{"saturates", p.Saturates},
		{"sugars", p.Sugars},
		{"fibre", p.Fibre},
		{"salt", p.Salt},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return newValidationError(f.name, "must be a positive number")
		}
	}
	return nil
}

// Scale multiplies every field of the profile by the normalized quantity q.
func (p NutrientProfile) Scale(q decimal.Decimal) Nutrients {
	return Nutrients{
		Energy:       q.Mul(decimal.NewFromInt(int64(p.Energy))),
		Protein:      q.Mul(p.Protein),
		Carbohydrate: q.Mul(p.Carbohydrate),
		Fat:          q.Mul(p.Fat),
		Saturates:    q.Mul(p.Saturates),
		Sugars:       q.Mul(p.Sugars),
		Fibre:        q.Mul(p.Fibre),
		Salt:         q.Mul(p.Salt),
	}
}

// Nutrients is a summed or scaled set of nutrient values.
type Nutrients struct {
	Energy       decimal.Decimal `json:"energy"`
	Protein      decimal.Decimal `json:"protein"`
	Carbohydrate decimal.Decimal `json:"carbohydrate"`
	Fat          decimal.Decimal `json:"fat"`
	Saturates    decimal.Decimal `json:"saturates"`
	Sugars       decimal.Decimal `json:"sugars"`
	Fibre        decimal.Decimal `json:"fibre"`
	Salt         decimal.Decimal `json:"salt"`
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Energy:       n.Energy.Add(o.Energy),
		Protein:      n.Protein.Add(o.Protein),
		Carbohydrate: n.Carbohydrate.Add(o.Carbohydrate),
		Fat:          n.Fat.Add(o.Fat),
		Saturates:    n.Saturates.Add(o.Saturates),
		Sugars:       n.Sugars.Add(o.Sugars),
		Fibre:        n.Fibre.Add(o.Fibre),
		Salt:         n.Salt.Add(o.Salt),
	}
}

// mean divides every field by count; count must be positive.
func (n Nutrients) mean(count int) Nutrients {
	c := decimal.NewFromInt(int64(count))
	return Nutrients{
		Energy:       n.Energy.Div(c),
		Protein:      n.Protein.Div(c),
		Carbohydrate: n.Carbohydrate.Div(c),
		Fat:          n.Fat.Div(c),
		Saturates:    n.Saturates.Div(c),
		Sugars:       n.Sugars.Div(c),
		Fibre:        n.Fibre.Div(c),
		Salt:         n.Salt.Div(c),
	}
}

// Macros holds the share of total energy coming from each macro-nutrient, in percent.
type Macros struct {
	ProteinPct      decimal.NullDecimal `json:"protein_pct"`
	CarbohydratePct decimal.NullDecimal `json:"carbohydrate_pct"`
	FatPct          decimal.NullDecimal `json:"fat_pct"`
}

// PerKg holds nutrient totals divided by body weight.
type PerKg struct {
	EnergyPerKg       decimal.NullDecimal `json:"energy_per_kg"`
	ProteinPerKg      decimal.NullDecimal `json:"protein_per_kg"`
	CarbohydratePerKg decimal.NullDecimal `json:"carbohydrate_per_kg"`
	FatPerKg          decimal.NullDecimal `json:"fat_per_kg"`
}

func MacroSplit(n Nutrients) Macros {
	return Macros{
		ProteinPct:      pct(n.Protein, kcalPerGramProtein, n.Energy),
		CarbohydratePct: pct(n.Carbohydrate, kcalPerGramCarbohydrate, n.Energy),
		FatPct:          pct(n.Fat, kcalPerGramFat, n.Energy),
	}
}

func RatiosPerKg(n Nutrients, weight decimal.NullDecimal) PerKg {
	if !weight.Valid {
		return PerKg{}
	}
	return PerKg{
		EnergyPerKg:       safeDiv(n.Energy, weight.Decimal),
		ProteinPerKg:      safeDiv(n.Protein, weight.Decimal),
		CarbohydratePerKg: safeDiv(n.Carbohydrate, weight.Decimal),
		FatPerKg:          safeDiv(n.Fat, weight.Decimal),
	}
}

func pct(grams, kcalPerGram, energy decimal.Decimal) decimal.NullDecimal {
	share := safeDiv(grams.Mul(kcalPerGram), energy)
	if !share.Valid {
		return share
	}
	return valid(share.Decimal.Mul(hundred))
}

func safeDiv(a, b decimal.Decimal) decimal.NullDecimal {
	if b.IsZero() {
		return decimal.NullDecimal{}
	}
	return valid(a.Div(b))
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// avgNull is the SQL AVG: nulls are skipped, and no values yields null.
func avgNull(values ...decimal.NullDecimal) decimal.NullDecimal {
	sum := decimal.Zero
	count := 0
	for _, v := range values {
		if !v.Valid {
			continue
		}
		sum = sum.Add(v.Decimal)
		count++
	}
	if count == 0 {
		return decimal.NullDecimal{}
	}
	return valid(sum.Div(decimal.NewFromInt(int64(count))))
}

func sumNull(values ...decimal.NullDecimal) decimal.NullDecimal {
	sum := decimal.Zero
	found := false
	for _, v := range values {
		if !v.Valid {
			continue
		}
		sum = sum.Add(v.Decimal)
		found = true
	}
	if !found {
		return decimal.NullDecimal{}
	}
	return valid(sum)
}

func maxNull(values ...decimal.NullDecimal) decimal.NullDecimal {
	var m decimal.NullDecimal
	for _, v := range values {
		if !v.Valid {
			continue
		}
		if !m.Valid || v.Decimal.GreaterThan(m.Decimal) {
			m = v
		}
	}
	return m
}

func intToNull(v *int) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return valid(decimal.NewFromInt(int64(*v)))
}
