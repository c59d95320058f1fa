package training

import (
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/shopspring/decimal"
)

type MovementTotal struct {
	Movement string          `json:"movement"`
	SetCount int             `json:"set_count"`
	RepCount int             `json:"rep_count"`
	Volume   decimal.Decimal `json:"volume"`
}

// Aggregate is the training rollup of a day together with the ISO week it falls in.
type Aggregate struct {
	Date         time.Time       `json:"date"`
	SetCount     int             `json:"set_count"`
	RepCount     int             `json:"rep_count"`
	WeekSetCount int             `json:"week_set_count"`
	WeekRepCount int             `json:"week_rep_count"`
	Movements    []MovementTotal `json:"movements"`
}

// AggregateDay counts the sets and reps logged on date and across its ISO week.
// Sets outside the week are ignored. Movements covers the day only, sorted by name.
func AggregateDay(sets []Set, date time.Time) Aggregate {
	day := nutrition.DateOf(date)
	monday, sunday := nutrition.WeekBounds(day)

	agg := Aggregate{
		Date:      day,
		Movements: []MovementTotal{},
	}
	byMovement := make(map[string]*MovementTotal)
	for _, s := range sets {
		d := nutrition.DateOf(s.Date)
		if d.Before(monday) || d.After(sunday) {
			continue
		}
		agg.WeekSetCount++
		agg.WeekRepCount += s.Reps
		if !d.Equal(day) {
			continue
		}

		agg.SetCount++
		agg.RepCount += s.Reps
		mt, ok := byMovement[s.Movement]
		if !ok {
			mt = &MovementTotal{Movement: s.Movement}
			byMovement[s.Movement] = mt
		}
		mt.SetCount++
		mt.RepCount += s.Reps
		if s.WeightKg.Valid {
			mt.Volume = mt.Volume.Add(s.WeightKg.Decimal.Mul(decimal.NewFromInt(int64(s.Reps))))
		}
	}

	for _, mt := range byMovement {
		agg.Movements = append(agg.Movements, *mt)
	}
	sort.Slice(agg.Movements, func(i, j int) bool {
		return agg.Movements[i].Movement < agg.Movements[j].Movement
	})
	return agg
}
