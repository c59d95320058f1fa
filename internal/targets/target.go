package targets

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
)

var (
	ErrTargetNotFound = fmt.Errorf("diet target %w", nutrition.ErrNotFound)
	ErrTargetExists   = fmt.Errorf("diet target for this date already exists: %w", nutrition.ErrConflict)
)

// DietTarget is a planned intake stored for one user and date.
type DietTarget struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Date   time.Time `json:"date"`
	nutrition.Target
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View adds the macro split and per-kg ratios of the target.
type View struct {
	DietTarget
	nutrition.Macros
	nutrition.PerKg
}

func (t DietTarget) View() View {
	macros, perKg := t.Ratios()
	return View{
		DietTarget: t,
		Macros:     macros,
		PerKg:      perKg,
	}
}

func (t DietTarget) AsTargetMacros() nutrition.TargetMacros {
	return nutrition.TargetMacros{
		Date:         t.Date,
		Energy:       t.Energy,
		Protein:      t.Protein,
		Carbohydrate: t.Carbohydrate,
		Fat:          t.Fat,
	}
}

type TargetRequest struct {
	Date string `json:"date"`
	nutrition.TargetInput
}

// ToTarget validates the request and plans the target from it.
func (r TargetRequest) ToTarget() (DietTarget, error) {
	date, err := nutrition.ParseDate(r.Date)
	if err != nil {
		return DietTarget{}, err
	}
	planned, err := nutrition.PlanTarget(r.TargetInput)
	if err != nil {
		return DietTarget{}, err
	}
	return DietTarget{
		Date:   date,
		Target: planned,
	}, nil
}
