package nutrition

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var DefaultWeightKg = decimal.NewFromInt(75)

const MaxHeightCm = 299

type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "SD"
	LightlyActive    ActivityLevel = "LA"
	ModeratelyActive ActivityLevel = "MA"
	VeryActive       ActivityLevel = "VA"
	ExtremelyActive  ActivityLevel = "EA"
)

type FitnessGoal string

const (
	LoseWeight     FitnessGoal = "LW"
	MaintainWeight FitnessGoal = "MW"
	GainWeight     FitnessGoal = "GW"
)

type bmrModel struct {
	base, weight, height, age decimal.Decimal
}

var bmrModels = map[Sex]bmrModel{
	Male: {
		base:   decimal.RequireFromString("88.362"),
		weight: decimal.RequireFromString("13.397"),
		height: decimal.RequireFromString("4.799"),
		age:    decimal.RequireFromString("5.677"),
	},
	Female: {
		base:   decimal.RequireFromString("447.593"),
		weight: decimal.RequireFromString("9.247"),
		height: decimal.RequireFromString("3.098"),
		age:    decimal.RequireFromString("4.330"),
	},
}

var activityMultipliers = map[ActivityLevel]decimal.Decimal{
	Sedentary:        decimal.RequireFromString("1.2"),
	LightlyActive:    decimal.RequireFromString("1.375"),
	ModeratelyActive: decimal.RequireFromString("1.55"),
	VeryActive:       decimal.RequireFromString("1.725"),
	ExtremelyActive:  decimal.RequireFromString("1.9"),
}

var goalMultipliers = map[FitnessGoal]decimal.Decimal{
	LoseWeight:     decimal.RequireFromString("0.8"),
	MaintainWeight: decimal.NewFromInt(1),
	GainWeight:     decimal.RequireFromString("1.1"),
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func ParseSex(code string) (Sex, error) {
	s := Sex(normalizeCode(code))
	if _, ok := bmrModels[s]; !ok {
		return "", newValidationError("sex", "must be one of M, F")
	}
	return s, nil
}

// SexFromCode falls back to Male for anything that is not a known code.
func SexFromCode(code string) Sex {
	s, err := ParseSex(code)
	if err != nil {
		return Male
	}
	return s
}

func (s Sex) String() string {
	switch s {
	case Female:
		return "Female"
	default:
		return "Male"
	}
}

func ParseActivityLevel(code string) (ActivityLevel, error) {
	a := ActivityLevel(normalizeCode(code))
	if _, ok := activityMultipliers[a]; !ok {
		return "", newValidationError("activity_level", "must be one of SD, LA, MA, VA, EA")
	}
	return a, nil
}

// ActivityLevelFromCode falls back to Sedentary for unknown codes.
func ActivityLevelFromCode(code string) ActivityLevel {
	a, err := ParseActivityLevel(code)
	if err != nil {
		return Sedentary
	}
	return a
}

func (a ActivityLevel) Multiplier() decimal.Decimal {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[Sedentary]
}

func (a ActivityLevel) String() string {
	switch a {
	case LightlyActive:
		return "Lightly Active"
	case ModeratelyActive:
		return "Moderately Active"
	case VeryActive:
		return "Very Active"
	case ExtremelyActive:
		return "Extremely Active"
	default:
		return "Sedentary"
	}
}

func ParseFitnessGoal(code string) (FitnessGoal, error) {
	g := FitnessGoal(normalizeCode(code))
	if _, ok := goalMultipliers[g]; !ok {
		return "", newValidationError("fitness_goal", "must be one of LW, MW, GW")
	}
	return g, nil
}

// FitnessGoalFromCode falls back to MaintainWeight for unknown codes.
func FitnessGoalFromCode(code string) FitnessGoal {
	g, err := ParseFitnessGoal(code)
	if err != nil {
		return MaintainWeight
	}
	return g
}

func (g FitnessGoal) Multiplier() decimal.Decimal {
	if m, ok := goalMultipliers[g]; ok {
		return m
	}
	return goalMultipliers[MaintainWeight]
}

func (g FitnessGoal) String() string {
	switch g {
	case LoseWeight:
		return "Lose Weight"
	case GainWeight:
		return "Gain Weight"
	default:
		return "Maintain Weight"
	}
}

// Profile is the physiological part of a user profile.
type Profile struct {
	Sex           Sex
	HeightCm      int
	DateOfBirth   time.Time
	ActivityLevel ActivityLevel
	FitnessGoal   FitnessGoal
}

type BodyMetrics struct {
	Age            int                 `json:"age"`
	Weight         decimal.Decimal     `json:"weight"`
	WeightDefault  bool                `json:"weight_default"`
	BMI            decimal.NullDecimal `json:"bmi"`
	BMR            decimal.Decimal     `json:"bmr"`
	TDEE           decimal.Decimal     `json:"tdee"`
	TargetCalories decimal.Decimal     `json:"target_calories"`
}

// Age counts whole years between dob and asOf. The year is not counted until
// the birthday has been reached.
func Age(dob, asOf time.Time) int {
	years := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() || (asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func BMI(weightKg decimal.Decimal, heightCm int) decimal.NullDecimal {
	heightM := decimal.NewFromInt(int64(heightCm)).Mul(centi)
	return safeDiv(weightKg, heightM.Mul(heightM))
}

// BMR uses the sex specific Harris-Benedict coefficients. Unknown sex codes use
// the male model.
func BMR(sex Sex, weightKg decimal.Decimal, heightCm, age int) decimal.Decimal {
	model, ok := bmrModels[sex]
	if !ok {
		model = bmrModels[Male]
	}
	return model.base.
		Add(model.weight.Mul(weightKg)).
		Add(model.height.Mul(decimal.NewFromInt(int64(heightCm)))).
		Sub(model.age.Mul(decimal.NewFromInt(int64(age))))
}

// Calculate derives the body metrics of a profile as of a date. When weightKg is
// null the 75 kg default weight is used.
func Calculate(p Profile, weightKg decimal.NullDecimal, asOf time.Time) BodyMetrics {
	weight := DefaultWeightKg
	defaulted := true
	if weightKg.Valid {
		weight = weightKg.Decimal
		defaulted = false
	}

	age := Age(p.DateOfBirth, asOf)
	bmr := BMR(p.Sex, weight, p.HeightCm, age)
	tdee := bmr.Mul(p.ActivityLevel.Multiplier())

	return BodyMetrics{
		Age:            age,
		Weight:         weight,
		WeightDefault:  defaulted,
		BMI:            BMI(weight, p.HeightCm),
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: tdee.Mul(p.FitnessGoal.Multiplier()),
	}
}

func ValidateHeight(heightCm int) error {
	if heightCm < 1 || heightCm > MaxHeightCm {
		return newValidationError("height", fmt.Sprintf("must be between 1 and %d", MaxHeightCm))
	}
	return nil
}
