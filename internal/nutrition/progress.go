package nutrition

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reading is a body-weight / energy-burnt entry. Any of its measurements may be missing.
type Reading struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"user_id"`
	Date        time.Time           `json:"date"`
	WeightKg    decimal.NullDecimal `json:"weight_kg"`
	EnergyBurnt *int                `json:"energy_burnt"`
	Notes       *string             `json:"notes"`
}

// LatestWeight picks the reading with the greatest date not after date that has a
// weight. It returns nil when there is none.
func LatestWeight(readings []Reading, date time.Time) *Reading {
	day := DateOf(date)
	var latest *Reading
	for i := range readings {
		r := readings[i]
		if !r.WeightKg.Valid || DateOf(r.Date).After(day) {
			continue
		}
		if latest == nil || r.Date.After(latest.Date) {
			latest = &readings[i]
		}
	}
	return latest
}

type ProgressSummary struct {
	UserID uuid.UUID `json:"user_id"`
	Date   time.Time `json:"date"`

	ProgressID  *uuid.UUID          `json:"progress_id"`
	Weight      decimal.NullDecimal `json:"weight"`
	EnergyBurnt *int                `json:"energy_burnt"`

	WeekAvgWeight         decimal.NullDecimal `json:"week_avg_weight"`
	MonthAvgWeight        decimal.NullDecimal `json:"month_avg_weight"`
	WeekAvgEnergyBurnt    decimal.NullDecimal `json:"week_avg_energy_burnt"`
	MonthAvgEnergyBurnt   decimal.NullDecimal `json:"month_avg_energy_burnt"`
	WeekTotalEnergyBurnt  decimal.NullDecimal `json:"week_total_energy_burnt"`
	MonthTotalEnergyBurnt decimal.NullDecimal `json:"month_total_energy_burnt"`

	LatestWeightID   *uuid.UUID          `json:"latest_weight_id"`
	LatestWeightDate *time.Time          `json:"latest_weight_date"`
	LatestWeight     decimal.NullDecimal `json:"latest_weight"`
}

// AggregateProgress summarises the readings around date: the ISO week and the
// calendar month containing it, the reading of the day itself and the latest weight.
func AggregateProgress(userID uuid.UUID, readings []Reading, date time.Time) ProgressSummary {
	day := DateOf(date)
	monday, sunday := WeekBounds(day)

	summary := ProgressSummary{
		UserID: userID,
		Date:   day,
	}

	var weekWeights, monthWeights, weekBurnt, monthBurnt []decimal.NullDecimal
	for _, r := range readings {
		rd := DateOf(r.Date)
		if rd.Equal(day) {
			id := r.ID
			summary.ProgressID = &id
			summary.Weight = r.WeightKg
			summary.EnergyBurnt = r.EnergyBurnt
		}
		if within(rd, monday, sunday) {
			weekWeights = append(weekWeights, r.WeightKg)
			weekBurnt = append(weekBurnt, intToNull(r.EnergyBurnt))
		}
		if sameMonth(rd, day) {
			monthWeights = append(monthWeights, r.WeightKg)
			monthBurnt = append(monthBurnt, intToNull(r.EnergyBurnt))
		}
	}

	summary.WeekAvgWeight = avgNull(weekWeights...)
	summary.MonthAvgWeight = avgNull(monthWeights...)
	summary.WeekAvgEnergyBurnt = avgNull(weekBurnt...)
	summary.MonthAvgEnergyBurnt = avgNull(monthBurnt...)
	summary.WeekTotalEnergyBurnt = sumNull(weekBurnt...)
	summary.MonthTotalEnergyBurnt = sumNull(monthBurnt...)

	if latest := LatestWeight(readings, day); latest != nil {
		id := latest.ID
		weightDate := DateOf(latest.Date)
		summary.LatestWeightID = &id
		summary.LatestWeightDate = &weightDate
		summary.LatestWeight = latest.WeightKg
	}

	return summary
}
