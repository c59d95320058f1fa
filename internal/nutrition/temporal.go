package nutrition

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WeekSummary struct {
	UserID uuid.UUID `json:"user_id"`
	Date   time.Time `json:"date"`
	Days   int       `json:"days"`
	Nutrients
	Macros
	PerKg
	LatestWeight     decimal.NullDecimal `json:"latest_weight"`
	LatestWeightDate *time.Time          `json:"latest_weight_date"`
}

func daysInWeek(days []DayTotal, anchor time.Time) (time.Time, []DayTotal) {
	monday, sunday := WeekBounds(anchor)
	inWeek := make([]DayTotal, 0, 7)
	for _, d := range days {
		if within(d.Date, monday, sunday) {
			inWeek = append(inWeek, d)
		}
	}
	return monday, inWeek
}

func latestWeightDate(days []DayTotal) *time.Time {
	var latest *time.Time
	for _, d := range days {
		if d.LatestWeightDate == nil {
			continue
		}
		if latest == nil || d.LatestWeightDate.After(*latest) {
			wd := *d.LatestWeightDate
			latest = &wd
		}
	}
	return latest
}

// WeekTotal sums the days of the anchor's ISO week. Percentages are derived from
// the summed values, per-kg ratios from the average resolved weight of the window.
func WeekTotal(userID uuid.UUID, days []DayTotal, anchor time.Time) WeekSummary {
	monday, inWeek := daysInWeek(days, anchor)

	var sum Nutrients
	weights := make([]decimal.NullDecimal, 0, len(inWeek))
	for _, d := range inWeek {
		sum = sum.Add(d.Nutrients)
		weights = append(weights, d.LatestWeight)
	}
	avgWeight := avgNull(weights...)

	return WeekSummary{
		UserID:           userID,
		Date:             monday,
		Days:             len(inWeek),
		Nutrients:        sum,
		Macros:           MacroSplit(sum),
		PerKg:            RatiosPerKg(sum, avgWeight),
		LatestWeight:     avgWeight,
		LatestWeightDate: latestWeightDate(inWeek),
	}
}

// WeekAverage averages the days of the anchor's ISO week. Unlike WeekTotal, the
// percentages and per-kg ratios are the mean of the already computed daily values.
func WeekAverage(userID uuid.UUID, days []DayTotal, anchor time.Time) WeekSummary {
	monday, inWeek := daysInWeek(days, anchor)
	summary := WeekSummary{
		UserID: userID,
		Date:   monday,
		Days:   len(inWeek),
	}
	if len(inWeek) == 0 {
		return summary
	}

	var sum Nutrients
	n := len(inWeek)
	proteinPct := make([]decimal.NullDecimal, 0, n)
	carbohydratePct := make([]decimal.NullDecimal, 0, n)
	fatPct := make([]decimal.NullDecimal, 0, n)
	energyPerKg := make([]decimal.NullDecimal, 0, n)
	proteinPerKg := make([]decimal.NullDecimal, 0, n)
	carbohydratePerKg := make([]decimal.NullDecimal, 0, n)
	fatPerKg := make([]decimal.NullDecimal, 0, n)
	weights := make([]decimal.NullDecimal, 0, n)
	for _, d := range inWeek {
		sum = sum.Add(d.Nutrients)
		proteinPct = append(proteinPct, d.ProteinPct)
		carbohydratePct = append(carbohydratePct, d.CarbohydratePct)
		fatPct = append(fatPct, d.FatPct)
		energyPerKg = append(energyPerKg, d.EnergyPerKg)
		proteinPerKg = append(proteinPerKg, d.ProteinPerKg)
		carbohydratePerKg = append(carbohydratePerKg, d.CarbohydratePerKg)
		fatPerKg = append(fatPerKg, d.FatPerKg)
		weights = append(weights, d.LatestWeight)
	}

	summary.Nutrients = sum.mean(n)
	summary.Macros = Macros{
		ProteinPct:      avgNull(proteinPct...),
		CarbohydratePct: avgNull(carbohydratePct...),
		FatPct:          avgNull(fatPct...),
	}
	summary.PerKg = PerKg{
		EnergyPerKg:       avgNull(energyPerKg...),
		ProteinPerKg:      avgNull(proteinPerKg...),
		CarbohydratePerKg: avgNull(carbohydratePerKg...),
		FatPerKg:          avgNull(fatPerKg...),
	}
	summary.LatestWeight = maxNull(weights...)
	summary.LatestWeightDate = latestWeightDate(inWeek)
	return summary
}

// TargetMacros is the part of a diet target shown next to the daily intake.
type TargetMacros struct {
	Date         time.Time
	Energy       int
	Protein      decimal.Decimal
	Carbohydrate decimal.Decimal
	Fat          decimal.Decimal
}

type MonthDay struct {
	Date   time.Time `json:"date"`
	UserID uuid.UUID `json:"user_id"`

	Energy       decimal.NullDecimal `json:"energy"`
	Protein      decimal.NullDecimal `json:"protein"`
	Carbohydrate decimal.NullDecimal `json:"carbohydrate"`
	Fat          decimal.NullDecimal `json:"fat"`

	WeekAvgEnergy       decimal.NullDecimal `json:"week_avg_energy"`
	WeekAvgProtein      decimal.NullDecimal `json:"week_avg_protein"`
	WeekAvgCarbohydrate decimal.NullDecimal `json:"week_avg_carbohydrate"`
	WeekAvgFat          decimal.NullDecimal `json:"week_avg_fat"`
	MonthAvgEnergy      decimal.NullDecimal `json:"month_avg_energy"`

	TargetEnergy       *int                `json:"target_energy"`
	TargetProtein      decimal.NullDecimal `json:"target_protein"`
	TargetCarbohydrate decimal.NullDecimal `json:"target_carbohydrate"`
	TargetFat          decimal.NullDecimal `json:"target_fat"`

	ProgressID         *uuid.UUID          `json:"progress_id"`
	Weight             decimal.NullDecimal `json:"weight"`
	EnergyBurnt        *int                `json:"energy_burnt"`
	WeekAvgWeight      decimal.NullDecimal `json:"week_avg_weight"`
	MonthAvgWeight     decimal.NullDecimal `json:"month_avg_weight"`
	WeekAvgEnergyBurnt decimal.NullDecimal `json:"week_avg_energy_burnt"`
}

// MonthSeries builds one row per calendar day of MonthSpan(anchor). The series comes
// from the calendar, so days without any log still get a row with null intake.
// Week averages are partitioned by ISO week and month averages by the calendar month
// of each row; null values are ignored by both.
func MonthSeries(
	userID uuid.UUID,
	anchor time.Time,
	days []DayTotal,
	readings []Reading,
	targets []TargetMacros,
) []MonthDay {
	from, to := MonthSpan(anchor)

	dayByDate := make(map[time.Time]DayTotal, len(days))
	for _, d := range days {
		dayByDate[DateOf(d.Date)] = d
	}
	readingByDate := make(map[time.Time]Reading, len(readings))
	for _, r := range readings {
		readingByDate[DateOf(r.Date)] = r
	}
	targetByDate := make(map[time.Time]TargetMacros, len(targets))
	for _, t := range targets {
		targetByDate[DateOf(t.Date)] = t
	}

	var series []MonthDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		row := MonthDay{
			Date:   d,
			UserID: userID,
		}
		if day, ok := dayByDate[d]; ok {
			row.Energy = valid(day.Energy)
			row.Protein = valid(day.Protein)
			row.Carbohydrate = valid(day.Carbohydrate)
			row.Fat = valid(day.Fat)
		}
		if t, ok := targetByDate[d]; ok {
			energy := t.Energy
			row.TargetEnergy = &energy
			row.TargetProtein = valid(t.Protein)
			row.TargetCarbohydrate = valid(t.Carbohydrate)
			row.TargetFat = valid(t.Fat)
		}
		if r, ok := readingByDate[d]; ok {
			id := r.ID
			row.ProgressID = &id
			row.Weight = r.WeightKg
			row.EnergyBurnt = r.EnergyBurnt
		}
		series = append(series, row)
	}

	weeks := make(map[time.Time]*window)
	months := make(map[time.Time]*window)
	for _, row := range series {
		monday, _ := WeekBounds(row.Date)
		first, _ := MonthBounds(row.Date)
		windowFor(weeks, monday).add(row)
		windowFor(months, first).add(row)
	}

	for i := range series {
		monday, _ := WeekBounds(series[i].Date)
		first, _ := MonthBounds(series[i].Date)
		week := weeks[monday]
		month := months[first]

		series[i].WeekAvgEnergy = avgNull(week.energy...)
		series[i].WeekAvgProtein = avgNull(week.protein...)
		series[i].WeekAvgCarbohydrate = avgNull(week.carbohydrate...)
		series[i].WeekAvgFat = avgNull(week.fat...)
		series[i].WeekAvgWeight = avgNull(week.weight...)
		series[i].WeekAvgEnergyBurnt = avgNull(week.energyBurnt...)
		series[i].MonthAvgEnergy = avgNull(month.energy...)
		series[i].MonthAvgWeight = avgNull(month.weight...)
	}

	return series
}

type window struct {
	energy, protein, carbohydrate, fat []decimal.NullDecimal
	weight, energyBurnt                []decimal.NullDecimal
}

func windowFor(windows map[time.Time]*window, key time.Time) *window {
	w, ok := windows[key]
	if !ok {
		w = &window{}
		windows[key] = w
	}
	return w
}

func (w *window) add(row MonthDay) {
	w.energy = append(w.energy, row.Energy)
	w.protein = append(w.protein, row.Protein)
	w.carbohydrate = append(w.carbohydrate, row.Carbohydrate)
	w.fat = append(w.fat, row.Fat)
	w.weight = append(w.weight, row.Weight)
	w.energyBurnt = append(w.energyBurnt, intToNull(row.EnergyBurnt))
}
